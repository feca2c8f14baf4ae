package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TaskWelcome is the asynq task type of the welcome e-mail.
const TaskWelcome = "email:welcome"

// WelcomeEmailPayload only carries the Clerk ID. Address and name are read
// from Clerk when the task runs.
type WelcomeEmailPayload struct {
	ClerkID string `json:"clerk_id"`
}

// NewWelcomeEmailTask builds the task for one user. The task ID is derived
// from the Clerk ID so a redelivered webhook cannot queue a second e-mail
// while the first is still retained.
func NewWelcomeEmailTask(clerkID string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{ClerkID: clerkID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.TaskID(welcomeTaskID(clerkID)),
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
		asynq.Retention(24*time.Hour),
	), nil
}

func welcomeTaskID(clerkID string) string {
	return TaskWelcome + ":" + clerkID
}

// EnqueueWelcomeEmail schedules the welcome e-mail for clerkID. A task that
// is already queued for the same user counts as success.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, clerkID string) error {
	task, err := NewWelcomeEmailTask(clerkID)
	if err != nil {
		return fmt.Errorf("failed to build welcome email task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return fmt.Errorf("failed to enqueue welcome email: %w", err)
	}

	j.logger.Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("clerk_id", clerkID).
		Msg("welcome email enqueued")

	return nil
}
