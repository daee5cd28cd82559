// Package database owns the shared PostgreSQL connection pool.
//
// Connections are borrowed per statement and handed back to the pool when the
// statement's rows are closed, on success and failure alike. Pool capacity and
// borrowing discipline are left to pgxpool defaults.
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amitbasuri/content-service-go/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

const healthCheckQuery = "SELECT NOW()"

// Pool is the subset of *pgxpool.Pool the service depends on
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Database wraps the shared connection pool
type Database struct {
	pool Pool
}

// New wraps an existing pool
func New(pool Pool) *Database {
	return &Database{pool: pool}
}

// Open creates the connection pool from cfg and runs a startup connectivity check.
// A failing check is logged and does not fail Open; later statements report
// their own errors.
func Open(ctx context.Context, cfg config.Database) (*Database, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ToDbConnectionUri())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	if cfg.LogQueries {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   NewSlogLogger(slog.Default()),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	db := New(pool)
	db.startupCheck(ctx)
	return db, nil
}

func (db *Database) startupCheck(ctx context.Context) {
	now, err := db.HealthCheck(ctx)
	if err != nil {
		slog.Error("Error connecting to the database", "error", err)
		return
	}
	slog.Info("Database connection successful", "now", now)
}

// HealthCheck runs a trivial query through Execute and returns the database server time
func (db *Database) HealthCheck(ctx context.Context) (time.Time, error) {
	rows, err := db.Execute(ctx, healthCheckQuery)
	if err != nil {
		return time.Time{}, fmt.Errorf("health check: %w", err)
	}
	if len(rows) == 0 {
		return time.Time{}, errors.New("health check: no row returned")
	}

	now, ok := rows[0]["now"].(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("health check: unexpected value %T", rows[0]["now"])
	}
	return now, nil
}

// Execute runs one statement with positional parameters and returns every
// result row keyed by column name
func (db *Database) Execute(ctx context.Context, sql string, args ...any) ([]map[string]any, error) {
	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	// CollectRows closes rows, which returns the connection to the pool
	result, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []map[string]any{}
	}
	return result, nil
}

// Pool returns the underlying connection pool
func (db *Database) Pool() Pool {
	return db.pool
}

// Close closes every connection in the pool
func (db *Database) Close() {
	slog.Info("Closing database connection pool")
	db.pool.Close()
}
