package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

// Connect dials the database with a bounded retry so the API survives a
// database container that is still starting up.
func Connect(dsn string, retries int, delay time.Duration) (*DB, error) {
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		db, err := NewPostgreSQLDB(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err
		slog.Error("database connection failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", retries),
			slog.Duration("retry_in", delay),
			slog.Any("error", err),
		)
		if attempt < retries {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("database connection failed after %d attempts: %w", retries, lastErr)
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
