package handler

import (
	"context"

	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/labstack/echo/v4"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type PostHandler struct {
	Handler
	posts PostLister
}

func NewPostHandler(s *server.Server, posts PostLister) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   posts,
	}
}

// ListPosts serves GET /posts.
func (h *PostHandler) ListPosts(c echo.Context, _ *model.ListPostsRequest) ([]model.Post, error) {
	return h.posts.ListPosts(c.Request().Context())
}
