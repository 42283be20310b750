// Package seed loads the startup dataset of users and posts.
//
// The dataset can come from a JSON file (optionally zstd or gzip compressed),
// a SQLite database written by cmd/seed-import, or the embedded default.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/db"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/util/compression"
)

//go:embed data.json
var defaultData []byte

var seedLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	seedLogger = l
}

// Dataset is the read-only startup state. Posts are newest first.
type Dataset struct {
	Users []model.User
	Posts []model.Entry
}

// Validate checks that user ids are unique and every post author exists.
func (d *Dataset) Validate() error {
	if len(d.Users) == 0 {
		return fmt.Errorf("seed has no users")
	}

	users := make(map[model.UserID]bool, len(d.Users))
	for _, u := range d.Users {
		if users[u.ID] {
			return fmt.Errorf("duplicate user id %d", u.ID)
		}
		users[u.ID] = true
	}

	posts := make(map[model.PostID]bool, len(d.Posts))
	for _, e := range d.Posts {
		if posts[e.Post.ID] {
			return fmt.Errorf("duplicate post id %d", e.Post.ID)
		}
		posts[e.Post.ID] = true

		if !users[e.Post.Author] {
			return fmt.Errorf("post %d author %d: %w", e.Post.ID, e.Post.Author, model.ErrUserNotFound)
		}
	}
	return nil
}

func isDatabase(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// Load reads the dataset at path. An empty path loads the embedded default.
func Load(path string) (*Dataset, error) {
	var ds *Dataset
	var err error

	switch {
	case path == "":
		ds, err = Default()
	case isDatabase(path):
		ds, err = loadDB(path)
	default:
		ds, err = loadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", path, err)
	}

	seedLogger.Info().
		Str("path", path).
		Int("users", len(ds.Users)).
		Int("posts", len(ds.Posts)).
		Msg("Seed loaded")
	return ds, nil
}

func loadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	if c, ok := compression.ForPath(path); ok {
		data, err = c.Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("decompress seed %q: %w", path, err)
		}
	}

	return Parse(data)
}

func loadDB(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open seed database: %w", err)
	}

	conn := db.NewReadOnlySQLite(path)
	if err := conn.InitDB(); err != nil {
		return nil, fmt.Errorf("open seed database: %w", err)
	}
	defer conn.Close()

	return ReadDB(conn)
}

// Save writes ds to path, choosing the format from the extension.
func Save(path string, ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}

	if isDatabase(path) {
		conn := db.NewSQLite(path)
		if err := conn.InitDB(); err != nil {
			return fmt.Errorf("create seed database: %w", err)
		}
		defer conn.Close()
		return WriteDB(conn, ds)
	}

	data, err := Encode(ds)
	if err != nil {
		return err
	}
	if c, ok := compression.ForPath(path); ok {
		if data, err = c.Compress(data); err != nil {
			return fmt.Errorf("compress seed: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
