package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog post served read-only by GET /posts.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ListPostsRequest is the (empty) payload of GET /posts.
type ListPostsRequest struct{}

func (r *ListPostsRequest) Validate() error {
	return nil
}
