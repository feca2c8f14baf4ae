package repository

import (
	"github.com/deppfellow/sixfigure-api/internal/server"
)

// Repositories groups every repository so services can be wired in one place.
type Repositories struct {
	User *UserRepository
	Post *PostRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User: NewUserRepository(s.DB.Pool),
		Post: NewPostRepository(s.DB.Pool),
	}
}
