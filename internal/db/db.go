package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/btmxh/thumbboard/internal/errs"
)

var GenericError = errors.New("Unable to access database")

type DB struct {
	sql     *sql.DB
	dialect Dialect
}

type Tx struct {
	ctx         context.Context
	transaction *sql.Tx
	handler     errs.ErrorHandler
	dialect     Dialect
}

func (tx *Tx) PublicError(statusCode int, err error) {
	tx.handler.PublicError(statusCode, err)
}

func (tx *Tx) PrivateError(err error) {
	tx.handler.PrivateError(err)
}

type QueryRow struct {
	row      *sql.Row
	tx       *Tx
	fkStatus int
	fkErr    error
}

func Open(dsn string) (*DB, error) {
	dialect := DialectFor(dsn)
	conn, err := sql.Open(dialect.DriverName(), dialect.DataSource(dsn))
	if err != nil {
		return nil, err
	}

	dialect.Configure(conn)
	return &DB{sql: conn, dialect: dialect}, nil
}

func (d *DB) Dialect() Dialect {
	return d.dialect
}

func (d *DB) Migrate(ctx context.Context) error {
	for _, stmt := range d.dialect.Schema() {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func DatabaseError(handler errs.ErrorHandler, err error) {
	handler.PrivateError(err)
	handler.PublicError(http.StatusInternalServerError, GenericError)
}

func (d *DB) BeginTx(ctx context.Context, handler errs.ErrorHandler) *Tx {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		DatabaseError(handler, err)
		return nil
	}

	return &Tx{ctx: ctx, transaction: tx, handler: handler, dialect: d.dialect}
}

func (tx *Tx) Exec(result *sql.Result, query string, args ...any) (hasErr bool) {
	res, err := tx.transaction.ExecContext(tx.ctx, query, args...)
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	if result != nil {
		*result = res
	}

	return false
}

// ExecAffected runs query and reports the number of rows it touched.
func (tx *Tx) ExecAffected(query string, args ...any) (affected int64, hasErr bool) {
	var res sql.Result
	if tx.Exec(&res, query, args...) {
		return 0, true
	}

	affected, err := res.RowsAffected()
	if err != nil {
		DatabaseError(tx.handler, err)
		return 0, true
	}

	return affected, false
}

func (tx *Tx) Query(rows **sql.Rows, query string, args ...any) (hasErr bool) {
	r, err := tx.transaction.QueryContext(tx.ctx, query, args...)
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	if rows != nil {
		*rows = r
	}

	return false
}

// ScanError reports an error raised while iterating rows returned by Query.
func (tx *Tx) ScanError(err error) (hasErr bool) {
	if err == nil {
		return false
	}

	DatabaseError(tx.handler, err)
	return true
}

func (tx *Tx) QueryRow(query string, args ...any) *QueryRow {
	return &QueryRow{row: tx.transaction.QueryRowContext(tx.ctx, query, args...), tx: tx}
}

// OnForeignKeyViolation reports a foreign key violation raised by this row as
// err with statusCode instead of a generic database error.
func (row *QueryRow) OnForeignKeyViolation(statusCode int, err error) *QueryRow {
	row.fkStatus = statusCode
	row.fkErr = err
	return row
}

func (row *QueryRow) Scan(hasRow *bool, dest ...any) (hasErr bool) {
	err := row.row.Scan(dest...)
	hasErr = err != nil && (hasRow == nil || err != sql.ErrNoRows)
	if hasErr {
		if row.fkErr != nil && row.tx.dialect.IsForeignKeyViolation(err) {
			row.tx.PrivateError(err)
			row.tx.PublicError(row.fkStatus, row.fkErr)
		} else {
			DatabaseError(row.tx.handler, err)
		}
	}
	if hasRow != nil {
		*hasRow = err == nil
	}
	return hasErr
}

func (tx *Tx) Rollback() {
	tx.transaction.Rollback()
}

func (tx *Tx) Commit() (hasErr bool) {
	err := tx.transaction.Commit()
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	return false
}

func (d *DB) Close() {
	if err := d.sql.Close(); err != nil {
		slog.Warn("error while closing database", "err", err)
	}
}
