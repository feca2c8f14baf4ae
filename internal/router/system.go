package router

import (
	"github.com/deppfellow/sixfigure-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not business logic:
// welcome, liveness, readiness and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Welcome)
	r.GET("/health", h.Health.Liveness)
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", "static")
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
