// Package store is the persistence adapter: a pgx connection pool plus typed
// query methods for the four tables the site owns. Connections are lazy, so
// a down database never prevents startup — every request independently
// re-attempts through the pool and the route layer degrades to fallback
// content on failure.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Open parses the connection URL and builds the pool. The pool does not dial
// eagerly; use Ping to learn whether the database is actually reachable.
func Open(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Pool returns the underlying pgx pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close drains the pool. Called once on shutdown.
func (db *DB) Close() {
	db.pool.Close()
}

// Queries exposes typed query methods over the pool.
type Queries struct {
	db *DB
}

// New creates a Queries value bound to the given DB.
func New(db *DB) *Queries {
	return &Queries{db: db}
}
