package handler

import (
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/deppfellow/sixfigure-api/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	User    *UserHandler
	Post    *PostHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		User:    NewUserHandler(s, services.User),
		Post:    NewPostHandler(s, services.Post),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
