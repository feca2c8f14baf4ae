package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/jackc/pgx/v5"
)

type PostRepository struct {
	db Querier
}

func NewPostRepository(db Querier) *PostRepository {
	return &PostRepository{db: db}
}

// ListPosts returns every post, newest first. The result is never nil.
func (r *PostRepository) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, content, created_at
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}

	if posts == nil {
		posts = []model.Post{}
	}

	return posts, nil
}
