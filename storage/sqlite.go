package storage

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps records in a SQLite file.
type SQLiteStore struct {
	sqlStore
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store for the database file at path. The file is
// created on Init if it does not exist.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{sqlStore{
		dsn: path,
		dialect: dialect{
			driver: "sqlite",
			// SQLite allows a single writer.
			configure: func(db *sql.DB) { db.SetMaxOpenConns(1) },
		},
	}}
}
