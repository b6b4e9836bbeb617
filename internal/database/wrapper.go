// Package database contains the Postgres access layer for recipes.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/cookingpuppy/internal/sql"
)

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=database

type Pool interface {
	Exec(ctx context.Context, query string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type Database struct {
	Querier

	Pool Pool
}

var _ Pool = (*pgxpool.Pool)(nil)

func NewDatabase(pool *pgxpool.Pool) *Database {
	return &Database{
		Querier: New(pool),
		Pool:    pool,
	}
}

// EnsureSchema ensures the database schema is applied to the
// Postgres database. The schema is applied to the database
// if the schema is not detected.
func (db *Database) EnsureSchema(ctx context.Context) error {
	exists, err := db.CheckRecipesTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}

	if exists {
		return nil
	}

	if _, err := db.Pool.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}

	return nil
}

// Close releases the connection pool.
func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
