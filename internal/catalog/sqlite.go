package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	ferrors "git.home.luguber.info/inful/refdocs/internal/foundation/errors"
)

// SQLiteStore keeps catalog records in a SQLite database so large metadata
// dumps are parsed once and queried many times.
type SQLiteStore struct {
	db      *sql.DB
	classes *sqliteFinder[*Class]
	modules *sqliteFinder[*Module]
}

// OpenSQLite opens (creating if needed) a catalog database.
// Use ":memory:" for an in-memory database.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryCatalog, "open sqlite catalog").
			Fatal().
			WithContext("path", dbPath).
			Build()
	}
	// :memory: databases are per-connection.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{
		db:      db,
		classes: &sqliteFinder[*Class]{db: db, table: "classes", kind: "class", newRecord: func() *Class { return &Class{} }},
		modules: &sqliteFinder[*Module]{db: db, table: "modules", kind: "module", newRecord: func() *Module { return &Module{} }},
	}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, ferrors.WrapError(err, ferrors.CategoryCatalog, "initialize catalog schema").
			Fatal().
			WithContext("path", dbPath).
			Build()
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS classes (
		import_path TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		id TEXT NOT NULL DEFAULT '',
		payload BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_classes_name ON classes(name);
	CREATE INDEX IF NOT EXISTS idx_classes_id ON classes(id);
	CREATE TABLE IF NOT EXISTS modules (
		import_path TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		id TEXT NOT NULL DEFAULT '',
		payload BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_modules_name ON modules(name);
	CREATE INDEX IF NOT EXISTS idx_modules_id ON modules(id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Import writes every record of d, replacing records with the same import path.
func (s *SQLiteStore) Import(ctx context.Context, d *Dump) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryCatalog, "begin catalog import").Fatal().Build()
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range d.Classes {
		if err := upsert(ctx, tx, "classes", c.ImportPath, c.Name, c.ID, c); err != nil {
			return err
		}
	}
	for _, m := range d.Modules {
		if err := upsert(ctx, tx, "modules", m.ImportPath, m.Name, m.ID, m); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryCatalog, "commit catalog import").Fatal().Build()
	}
	return nil
}

func upsert(ctx context.Context, tx *sql.Tx, table, importPath, name, id string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryCatalog, "encode catalog record").
			Fatal().
			WithContext("identifier", importPath).
			Build()
	}
	// table is one of two constants, never user input.
	stmt := fmt.Sprintf(`INSERT OR REPLACE INTO %s (import_path, name, id, payload) VALUES (?, ?, ?, ?)`, table)
	if _, err := tx.ExecContext(ctx, stmt, importPath, name, id, payload); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryCatalog, "store catalog record").
			Fatal().
			WithContext("identifier", importPath).
			Build()
	}
	return nil
}

// Classes returns the class lookup.
func (s *SQLiteStore) Classes() ClassSource { return s.classes }

// Modules returns the module lookup.
func (s *SQLiteStore) Modules() ModuleSource { return s.modules }

// Count returns the number of stored classes and modules.
func (s *SQLiteStore) Count(ctx context.Context) (classes, modules int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&classes); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modules`).Scan(&modules); err != nil {
		return 0, 0, err
	}
	return classes, modules, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteFinder[T Record] struct {
	db        *sql.DB
	table     string
	kind      string
	newRecord func() T
}

func (f *sqliteFinder[T]) Find(query string) (T, error) {
	var zero T
	q, err := ParseQuery(query)
	if err != nil {
		return zero, err
	}
	// q.Field is validated by ParseQuery against the fixed column set.
	stmt := fmt.Sprintf(`SELECT payload FROM %s WHERE %s = ? ORDER BY rowid LIMIT 1`, f.table, q.Field)
	var payload []byte
	err = f.db.QueryRow(stmt, q.Value).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, notFound(f.kind, q)
	}
	if err != nil {
		return zero, ferrors.WrapError(err, ferrors.CategoryCatalog, "query catalog").
			Fatal().
			WithContext("query", q.String()).
			Build()
	}
	record := f.newRecord()
	if err := json.Unmarshal(payload, record); err != nil {
		return zero, ferrors.WrapError(err, ferrors.CategoryCatalog, "decode catalog record").
			Fatal().
			WithContext("identifier", q.Value).
			Build()
	}
	return record, nil
}
