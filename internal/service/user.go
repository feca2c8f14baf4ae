package service

import (
	"context"
	"errors"

	"github.com/deppfellow/sixfigure-api/internal/errs"
	"github.com/deppfellow/sixfigure-api/internal/model"
	"github.com/deppfellow/sixfigure-api/internal/repository"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/rs/zerolog"
)

// UserStore is the persistence port of UserService.
//
// GetByClerkID returns (nil, nil) when nothing matches. Create returns
// (nil, nil) when the insert produced no row and
// repository.ErrUserAlreadyExists on a clerk_id conflict.
type UserStore interface {
	GetByClerkID(ctx context.Context, clerkID string) (*model.User, error)
	Create(ctx context.Context, clerkID string) (*model.User, error)
}

// WelcomeEnqueuer schedules the welcome email for a freshly created user.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, clerkID string) error
}

type UserService struct {
	users   UserStore
	welcome WelcomeEnqueuer
	logger  *zerolog.Logger
}

func NewUserService(s *server.Server, users UserStore) *UserService {
	svc := &UserService{
		users:  users,
		logger: s.Logger,
	}

	if s.Job != nil && s.Config.WelcomeEmailsEnabled() {
		svc.welcome = s.Job
	}

	return svc
}

// ProcessWebhook applies a validated Clerk event.
//
// Events other than user.created are acknowledged and dropped. For
// user.created the user is looked up once and inserted at most once, so a
// redelivered event reports "User already exists" instead of failing.
func (s *UserService) ProcessWebhook(ctx context.Context, event model.ClerkWebhookEvent) (*model.WebhookResponse, error) {
	log := loggerFrom(ctx, s.logger)

	if !event.IsUserCreated() {
		log.Info().Str("event_type", event.Type).Msg("ignoring webhook event")
		return &model.WebhookResponse{Success: true, Message: event.IgnoredMessage()}, nil
	}

	existing, err := s.users.GetByClerkID(ctx, event.ClerkID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Info().Str("clerk_id", event.ClerkID).Msg("user already exists")
		return alreadyExists(event.ClerkID), nil
	}

	user, err := s.users.Create(ctx, event.ClerkID)
	if err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			log.Info().Str("clerk_id", event.ClerkID).Msg("user created by a concurrent delivery")
			return alreadyExists(event.ClerkID), nil
		}
		return nil, err
	}
	if user == nil {
		return nil, errs.NewStoreWriteFailedError("Failed to create user")
	}

	log.Info().
		Str("clerk_id", user.ClerkID).
		Str("user_id", user.ID.String()).
		Msg("user created")

	if s.welcome != nil {
		if err := s.welcome.EnqueueWelcomeEmail(ctx, user.ClerkID); err != nil {
			log.Error().Err(err).Str("clerk_id", user.ClerkID).Msg("failed to enqueue welcome email")
		}
	}

	return &model.WebhookResponse{
		Success: true,
		Message: model.MessageUserCreated,
		User:    user,
	}, nil
}

func alreadyExists(clerkID string) *model.WebhookResponse {
	return &model.WebhookResponse{
		Success: true,
		Message: model.MessageUserAlreadyExists,
		ClerkID: clerkID,
	}
}
