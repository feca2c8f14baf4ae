// Package router builds the Echo instance: middleware order, error
// handler and every route.
package router

import (
	"net/http"

	"github.com/deppfellow/sixfigure-api/internal/handler"
	"github.com/deppfellow/sixfigure-api/internal/middleware"
	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes.
//
// The New Relic transaction and the request ID must exist before the
// tracing and context middleware read them. RequestLogger relies on the
// logger stored by EnhanceContext.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.GET("/posts", handler.Handle(
		h.Post.Handler,
		h.Post.ListPosts,
		http.StatusOK,
		func() *model.ListPostsRequest { return &model.ListPostsRequest{} },
	))

	api := router.Group("/api")
	registerUserRoutes(api, h)

	return router
}

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	users := api.Group("/users")

	users.POST("/webhook", handler.Handle(
		h.User.Handler,
		h.User.HandleClerkWebhook,
		http.StatusOK,
		func() *model.ClerkWebhookRequest { return &model.ClerkWebhookRequest{} },
	))
}
