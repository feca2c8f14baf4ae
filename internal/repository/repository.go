// Package repository holds the SQL for every table the service touches.
//
// Repositories take the pgx pool (or anything with the same Query method),
// scan rows into model types and leave error translation to the callers.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool the repositories use.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
