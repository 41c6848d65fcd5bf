// Package filex contains filesystem helpers for the local storage database.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DBPath returns the filesystem path an SQLite DSN refers to, or "" for
// in-memory databases. Both plain paths and "file:" URIs are understood.
func DBPath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	path, _, _ = strings.Cut(path, "?")
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

// EnsureParentDir creates the directory that will hold the database named
// by dsn. It does nothing for in-memory databases.
func EnsureParentDir(dsn string) error {
	path := DBPath(dsn)
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
