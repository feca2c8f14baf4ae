package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// ErrUserAlreadyExists is returned by Create when users.clerk_id already
// holds the given value.
var ErrUserAlreadyExists = errors.New("user already exists")

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetByClerkID returns (nil, nil) when no user has the given clerk ID.
func (r *UserRepository) GetByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, clerk_id, created_at
		FROM users
		WHERE clerk_id = @clerk_id
		LIMIT 1
	`, pgx.NamedArgs{"clerk_id": clerkID})
	if err != nil {
		return nil, fmt.Errorf("failed to query user by clerk_id %s: %w", clerkID, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect user by clerk_id %s: %w", clerkID, err)
	}

	return user, nil
}

// Create inserts a user and returns the stored row.
//
// An insert that returns no row yields (nil, nil); the caller decides what
// that means. A unique violation on clerk_id yields ErrUserAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, clerkID string) (*model.User, error) {
	rows, err := r.db.Query(ctx, `
		INSERT INTO users (clerk_id)
		VALUES (@clerk_id)
		RETURNING id, clerk_id, created_at
	`, pgx.NamedArgs{"clerk_id": clerkID})
	if err != nil {
		return nil, r.insertError(clerkID, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, r.insertError(clerkID, err)
	}

	return user, nil
}

func (r *UserRepository) insertError(clerkID string, err error) error {
	if sqlerr.IsUniqueViolation(err) {
		return ErrUserAlreadyExists
	}
	return fmt.Errorf("failed to insert user %s: %w", clerkID, err)
}
