package service

import (
	"github.com/deppfellow/sixfigure-api/internal/lib/job"
	"github.com/deppfellow/sixfigure-api/internal/repository"
	"github.com/deppfellow/sixfigure-api/internal/server"
)

type Services struct {
	Auth *AuthService
	User *UserService
	Post *PostService
	Job  *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	return &Services{
		Job:  s.Job,
		Auth: authService,
		User: NewUserService(s, repos.User),
		Post: NewPostService(s, repos.Post),
	}, nil
}
