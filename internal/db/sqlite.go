package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite opens the SQLite database at path with foreign keys enabled,
// creating the parent directory when needed. ":memory:" opens a private
// in-memory database. SQLite serialises writers, so the handle is limited
// to one connection.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := "file::memory:?_foreign_keys=on"
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = "file:" + path + sep + "_foreign_keys=on&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
