package service

import (
	"context"

	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/rs/zerolog"
)

type PostStore interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type PostService struct {
	posts  PostStore
	logger *zerolog.Logger
}

func NewPostService(s *server.Server, posts PostStore) *PostService {
	return &PostService{posts: posts, logger: s.Logger}
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		loggerFrom(ctx, s.logger).Error().Err(err).Msg("failed to list posts")
		return nil, err
	}

	return posts, nil
}
