package middleware

import (
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares is built once at startup and handed to the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
}

// NewMiddlewares builds every middleware group. Tracing degrades to a no-op
// when New Relic is disabled.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
	}
}
