package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/labstack/echo/v4"
)

// DefaultOpenAPIUIPath is relative to the working directory, like the
// /static route serving openapi.json.
const DefaultOpenAPIUIPath = "static/openapi.html"

// OpenAPIHandler serves the API reference UI.
type OpenAPIHandler struct {
	Handler
	uiPath string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		uiPath:  DefaultOpenAPIUIPath,
	}
}

// ServeOpenAPIUI serves GET /docs. The page is re-read on every request and
// marked no-cache so edits show up without a restart.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := os.ReadFile(h.uiPath)
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTML(http.StatusOK, string(page))
}
