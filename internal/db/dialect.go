package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect interface {
	Name() string
	DriverName() string
	DataSource(dsn string) string
	Configure(conn *sql.DB)
	Schema() []string
	IsForeignKeyViolation(err error) bool
}

// DialectFor picks Postgres for postgres:// URLs and SQLite for everything
// else, so a bare file path such as "thumbnails.db" is a SQLite database.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return PostgresDialect{}
	}

	return SQLiteDialect{}
}

type SQLiteDialect struct{}

func (SQLiteDialect) Name() string {
	return "sqlite"
}

func (SQLiteDialect) DriverName() string {
	return "sqlite"
}

func (SQLiteDialect) DataSource(dsn string) string {
	path := strings.TrimPrefix(dsn, "sqlite://")
	path = strings.TrimPrefix(path, "file:")

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return "file:" + path + sep + "_pragma=foreign_keys(1)"
}

func (SQLiteDialect) Configure(conn *sql.DB) {
	// single writer
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
}

func (SQLiteDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS thumbnails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			video_url TEXT NOT NULL,
			thumbnail_url TEXT NOT NULL,
			title TEXT,
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (board_id) REFERENCES boards (id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS thumbnails_board_id_idx ON thumbnails (board_id)`,
	}
}

func (SQLiteDialect) IsForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}

	// primary result code only when extended codes are off
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}

type PostgresDialect struct{}

func (PostgresDialect) Name() string {
	return "postgres"
}

func (PostgresDialect) DriverName() string {
	return "postgres"
}

func (PostgresDialect) DataSource(dsn string) string {
	return dsn
}

func (PostgresDialect) Configure(_ *sql.DB) {}

func (PostgresDialect) Schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS thumbnails (
			id SERIAL PRIMARY KEY,
			board_id TEXT NOT NULL REFERENCES boards (id) ON DELETE CASCADE,
			video_url TEXT NOT NULL,
			thumbnail_url TEXT NOT NULL,
			title TEXT,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS thumbnails_board_id_idx ON thumbnails (board_id)`,
	}
}

func (PostgresDialect) IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation"
}
