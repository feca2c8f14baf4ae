package job

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/deppfellow/sixfigure-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// InitHandlers wires the dependencies of the task handlers. It must run
// before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
	j.lookupUser = user.Get
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", asynq.SkipRetry)
	}
	if p.ClerkID == "" {
		return fmt.Errorf("welcome email payload has no clerk_id: %w", asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskWelcome).
		Str("clerk_id", p.ClerkID).
		Logger()

	u, err := j.lookupUser(ctx, p.ClerkID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")
		return fmt.Errorf("failed to look up user %s: %w", p.ClerkID, err)
	}

	to, ok := PrimaryEmailAddress(u)
	if !ok {
		log.Warn().Msg("user has no e-mail address, skipping welcome email")
		return nil
	}

	if err := j.emails.SendWelcomeEmail(to, firstName(u)); err != nil {
		log.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	log.Info().Msg("welcome email sent")
	return nil
}

// PrimaryEmailAddress returns the user's primary address, or the first one
// when no primary is set.
func PrimaryEmailAddress(u *clerk.User) (string, bool) {
	if u == nil || len(u.EmailAddresses) == 0 {
		return "", false
	}

	if u.PrimaryEmailAddressID != nil {
		for _, addr := range u.EmailAddresses {
			if addr != nil && addr.ID == *u.PrimaryEmailAddressID {
				return addr.EmailAddress, true
			}
		}
	}

	for _, addr := range u.EmailAddresses {
		if addr != nil && addr.EmailAddress != "" {
			return addr.EmailAddress, true
		}
	}

	return "", false
}

func firstName(u *clerk.User) string {
	if u.FirstName == nil || strings.TrimSpace(*u.FirstName) == "" {
		return "there"
	}
	return *u.FirstName
}

func sprint(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
