package catalog

import (
	"path/filepath"
	"strings"
)

// Store is a catalog backend.
type Store interface {
	Classes() ClassSource
	Modules() ModuleSource
	Close() error
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

// IsSQLitePath reports whether path names a SQLite catalog rather than a YAML dump.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Open opens the catalog at path, choosing the backend from the extension.
func Open(path string) (Store, error) {
	if IsSQLitePath(path) {
		return OpenSQLite(path)
	}
	d, err := LoadDumpFile(path)
	if err != nil {
		return nil, err
	}
	return NewMemory(d), nil
}
