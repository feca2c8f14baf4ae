package handler

import (
	"context"
	"errors"

	"github.com/deppfellow/sixfigure-api/internal/errs"
	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/labstack/echo/v4"
)

// WebhookProcessor applies a parsed Clerk event.
type WebhookProcessor interface {
	ProcessWebhook(ctx context.Context, event model.ClerkWebhookEvent) (*model.WebhookResponse, error)
}

type UserHandler struct {
	Handler
	users WebhookProcessor
}

func NewUserHandler(s *server.Server, users WebhookProcessor) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// HandleClerkWebhook serves POST /api/users/webhook.
//
// Errors that are already HTTP errors keep their status and code; anything
// else becomes a 500 UNEXPECTED_ERROR carrying the cause.
func (h *UserHandler) HandleClerkWebhook(c echo.Context, req *model.ClerkWebhookRequest) (*model.WebhookResponse, error) {
	resp, err := h.users.ProcessWebhook(c.Request().Context(), req.Event())
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		return nil, errs.NewUnexpectedError("Webhook processing failed", err)
	}

	return resp, nil
}
