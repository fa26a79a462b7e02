package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool builds a pgx connection pool. An unreachable database is not
// fatal: the pool reconnects lazily and the contact path degrades until it
// does, so a ping failure here only logs a warning.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		log.Printf("WARN: database unreachable at startup: %v", err)
		return pool, nil
	}

	log.Println("Database connected successfully")

	return pool, nil
}
