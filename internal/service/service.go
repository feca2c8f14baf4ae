// Package service holds the business rules.
//
// Handlers hand it validated input; it decides what to read and write
// through the repository ports declared next to each service.
package service

import (
	"context"

	"github.com/rs/zerolog"
)

// loggerFrom prefers the request-scoped logger stored in ctx by the
// context middleware and falls back to the service logger.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if fallback != nil {
		return fallback
	}
	nop := zerolog.Nop()
	return &nop
}
