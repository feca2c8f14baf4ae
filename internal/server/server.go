// Package server holds Server, the container of the process-wide
// dependencies, and owns their lifecycle: the pgx pool, the Redis client,
// the asynq workers and the HTTP server itself.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/deppfellow/sixfigure-api/internal/database"
	"github.com/deppfellow/sixfigure-api/internal/lib/job"
	loggerPkg "github.com/deppfellow/sixfigure-api/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisPingTimeout = 5 * time.Second

type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database
	Redis         *redis.Client
	Job           *job.JobService

	httpServer *http.Server
}

// New connects to every dependency and starts the background workers.
//
// The database must answer its ping. Redis may be down at startup: the
// failure is logged and enqueueing retries on each call.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient := newRedisClient(cfg, loggerService)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to Redis, continuing without it")
	}

	jobService := job.NewJobService(logger, cfg)
	jobService.InitHandlers(cfg, logger)

	if err := jobService.Start(); err != nil {
		_ = redisClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("failed to start job server: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Job:           jobService,
	}, nil
}

func newRedisClient(cfg *config.Config, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	return client
}

// SetupHTTPServer must be called before Start. Timeouts come from the
// server config, in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks until the HTTP server stops. A graceful Shutdown makes it
// return http.ErrServerClosed.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("version", config.Version).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests, then stops the workers and closes
// Redis and the database pool. It keeps going after a failure and returns
// every error it met.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	return errors.Join(errs...)
}
