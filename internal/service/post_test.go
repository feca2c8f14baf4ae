package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostStore struct {
	posts []model.Post
	err   error
}

func (f *fakePostStore) ListPosts(context.Context) ([]model.Post, error) {
	return f.posts, f.err
}

func TestPostService_ListPosts(t *testing.T) {
	logger := zerolog.Nop()

	svc := &PostService{posts: &fakePostStore{posts: []model.Post{{Title: "Hello"}}}, logger: &logger}
	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	storeErr := errors.New("boom")
	svc = &PostService{posts: &fakePostStore{err: storeErr}, logger: &logger}
	_, err = svc.ListPosts(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
