// Package job runs background work on asynq.
//
// The API process is both producer and consumer: handlers enqueue tasks
// through JobService.Client and the embedded asynq server executes them.
package job

import (
	"context"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Queue names and their share of the worker pool.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"

	workerConcurrency = 10
)

// WelcomeSender delivers the welcome e-mail.
type WelcomeSender interface {
	SendWelcomeEmail(to, firstName string) error
}

// UserLookup fetches a user from the Clerk Backend API.
type UserLookup func(ctx context.Context, clerkID string) (*clerk.User, error)

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	emails     WelcomeSender
	lookupUser UserLookup
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: workerConcurrency,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
	}
}

// Start registers the task handlers and starts the workers. It returns once
// the workers are running.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.mux())
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Stop waits for in-flight tasks and closes the enqueue connection.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes asynq's internal logs through zerolog.
type asynqLogger struct {
	log zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{log: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.log.Debug().Msg(sprint(args)) }
func (l *asynqLogger) Info(args ...any)  { l.log.Info().Msg(sprint(args)) }
func (l *asynqLogger) Warn(args ...any)  { l.log.Warn().Msg(sprint(args)) }
func (l *asynqLogger) Error(args ...any) { l.log.Error().Msg(sprint(args)) }
func (l *asynqLogger) Fatal(args ...any) { l.log.Fatal().Msg(sprint(args)) }
