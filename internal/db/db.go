// Copyright (c) 2026 Keycalc Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists the calculation history for keycalc. It hides the
// underlying database (SQLite, PostgreSQL or MySQL) behind Store, built on
// a long-lived *bun.DB.
package db // import "github.com/toeirei/keycalc/internal/db"

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Store is the bun-backed history store.
type Store struct {
	bun    *bun.DB
	dbType string
}

// driverName maps a database type to the registered database/sql driver.
func driverName(dbType string) (string, error) {
	switch dbType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedType, dbType)
	}
}

// Open connects to the database, creates the history table if needed and
// returns a Store.
func Open(ctx context.Context, dbType, dsn string) (*Store, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	configurePool(sqlDB, dbType, dsn)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbLogf("db: opened %s driver in %s", driver, time.Since(start))

	s := &Store{bun: createBunDB(sqlDB, dbType), dbType: dbType}
	if err := s.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// configurePool applies connection pool limits. Values can be overridden
// with KEYCALC_DB_MAX_OPEN_CONNS and KEYCALC_DB_CONN_MAX_LIFETIME_SECONDS.
func configurePool(sqlDB *sql.DB, dbType, dsn string) {
	const (
		defaultMaxOpenConns    = 4
		defaultConnMaxLifetime = 5 * time.Minute
	)

	maxOpen := defaultMaxOpenConns
	if v := os.Getenv("KEYCALC_DB_MAX_OPEN_CONNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			maxOpen = n
		}
	}
	// Each connection to an in-memory SQLite database sees its own empty
	// database, so keep exactly one.
	if dbType == "sqlite" && (dsn == ":memory:" || dsn == "file::memory:") {
		maxOpen = 1
	}
	connMax := defaultConnMaxLifetime
	if v := os.Getenv("KEYCALC_DB_CONN_MAX_LIFETIME_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			connMax = time.Duration(n) * time.Second
		}
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)
	if dbType == "sqlite" && maxOpen == 1 {
		// Closing the last connection would drop the in-memory database.
		connMax = 0
	}
	sqlDB.SetConnMaxLifetime(connMax)
}

// createBunDB constructs a *bun.DB for the provided *sql.DB and dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// migrate creates the schema. The history table is the only one.
func (s *Store) migrate(ctx context.Context) error {
	start := time.Now()
	_, err := s.bun.NewCreateTable().
		Model((*historyRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return err
	}
	dbLogf("db: migrations for %s completed in %s", s.dbType, time.Since(start))
	return nil
}

// Type returns the database type the store was opened with.
func (s *Store) Type() string { return s.dbType }

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.bun.Close()
}
