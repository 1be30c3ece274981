package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB is the shared connection pool handed to every repository.
type DB struct {
	Conn    *sqlx.DB
	dialect dialect
}

func NewDB(conn *sqlx.DB) *DB {
	d := dialectPostgres
	if strings.HasPrefix(conn.DriverName(), "sqlite") {
		d = dialectSQLite
	}

	return &DB{
		Conn:    conn,
		dialect: d,
	}
}

// Connect opens a traced Postgres connection pool.
func Connect(dsn string) (*DB, error) {
	sqlDB, err := otelsql.Open("postgres", dsn, otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	return NewDB(sqlx.NewDb(sqlDB, "postgres")), nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

// forUpdate is appended to a SELECT to take an exclusive row lock. SQLite has
// no row locks; its transactions are serialized by the database lock instead.
func (db *DB) forUpdate() string {
	if db.dialect == dialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}

// forShareOf keeps the rows of table alias from changing until the
// transaction ends while still letting other readers share them.
func (db *DB) forShareOf(alias string) string {
	if db.dialect == dialectPostgres {
		return " FOR SHARE OF " + alias
	}
	return ""
}

func (db *DB) txOptions() *sql.TxOptions {
	if db.dialect == dialectPostgres {
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return nil
}

func (db *DB) updateInTx(
	ctx context.Context,
	fn func(ctx context.Context, tx *sqlx.Tx) error,
) (err error) {
	tx, err := db.Conn.BeginTxx(ctx, db.txOptions())
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("committing transaction: %w", commitErr)
		}
	}()

	return fn(ctx, tx)
}
