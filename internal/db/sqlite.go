package db

import (
	"database/sql"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    nickname TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    content TEXT NOT NULL,
    upvotes INTEGER NOT NULL DEFAULT 0,
    downvotes INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY(user_id) REFERENCES users(id)
);`

type SQLite struct {
	path     string
	readOnly bool

	conn *sql.DB
}

func NewSQLite(path string) *SQLite {
	return &SQLite{path: path}
}

// NewReadOnlySQLite opens an existing database without ever writing to it.
func NewReadOnlySQLite(path string) *SQLite {
	return &SQLite{path: path, readOnly: true}
}

func (s *SQLite) dsn() string {
	if s.path == ":memory:" {
		return s.path
	}
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	if s.readOnly {
		q.Set("mode", "ro")
	}
	return "file:" + s.path + "?" + q.Encode()
}

// InitDB opens the connection and, unless read-only, creates the seed schema.
func (s *SQLite) InitDB() error {
	var err error
	s.conn, err = sql.Open("sqlite3", s.dsn())
	if err != nil {
		return err
	}
	if s.path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		s.conn.SetMaxOpenConns(1)
	}

	if s.readOnly {
		dbLogger.Info().Str("path", s.path).Msg("Database opened read-only")
		return s.conn.Ping()
	}

	res, err := s.conn.Exec(schema)
	dbLogger.Info().Any("db_result", res).Str("path", s.path).Msg("Database initialized")
	return err
}

func (s *SQLite) Get() *sql.DB {
	return s.conn
}

func (s *SQLite) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *SQLite) Query(query string, args ...any) (*sql.Rows, error) {
	dbLogger.Debug().Str("query", query).Msg("Query")
	return s.conn.Query(query, args...)
}

func (s *SQLite) Exec(query string, args ...any) (sql.Result, error) {
	dbLogger.Debug().Str("query", query).Msg("Exec")
	return s.conn.Exec(query, args...)
}
