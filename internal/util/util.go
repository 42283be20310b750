// Package util provides content hashing and page front matter parsing.
package util

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gomarkdown/markdown"
	"github.com/mmarkdown/mmark/v2/mast"
)

var ErrNoFrontMatter = errors.New("invalid front matter format")

// PageInfo is the TOML front matter of a documentation page.
type PageInfo struct {
	*mast.TitleData

	// Short label used in navigation.
	NavLabel string `toml:"nav"`

	// Number of bytes of front matter, including delimiters.
	Consumed int `toml:"-"`
}

func ContentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func ContentHashString(content string) string {
	return ContentHash([]byte(content))
}

// GetFrontMatter parses a leading %%% delimited TOML block. md is normalized
// first, and Consumed is relative to the normalized, left-trimmed input
// returned alongside the info.
func GetFrontMatter(md []byte) (*PageInfo, []byte, error) {
	md = markdown.NormalizeNewlines(md)
	md = bytes.TrimLeft(md, "\n \t\r")

	delimiter := []byte("%%%")

	if len(md) < 2*len(delimiter) || !bytes.HasPrefix(md, delimiter) {
		return nil, md, ErrNoFrontMatter
	}

	second := bytes.Index(md[len(delimiter):], delimiter)
	if second == -1 {
		return nil, md, ErrNoFrontMatter
	}

	frontMatter := md[len(delimiter) : len(delimiter)+second]
	end := 2*len(delimiter) + second

	info := &PageInfo{
		TitleData: &mast.TitleData{},
	}
	if _, err := toml.Decode(string(frontMatter), info); err != nil {
		return nil, md, fmt.Errorf("failed to decode front matter: %w", err)
	}

	if info.Language == "" {
		info.Language = "en"
	}
	if info.NavLabel == "" {
		info.NavLabel = info.Title
	}
	info.Consumed = end

	return info, md, nil
}
