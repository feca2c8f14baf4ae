// Package database opens the instrumented pgx pool shared by the repositories.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/deppfellow/sixfigure-api/internal/config"
	loggerConfig "github.com/deppfellow/sixfigure-api/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database wraps the pgx connection pool.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// queryTracer is the subset of pgx.QueryTracer every chained tracer implements.
type queryTracer interface {
	TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
	TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
}

// multiTracer fans a single ConnConfig.Tracer out to several tracers.
type multiTracer struct {
	tracers []queryTracer
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		ctx = tracer.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		tracer.TraceQueryEnd(ctx, conn, data)
	}
}

type slowQueryStartKey struct{}

type slowQueryStart struct {
	sql   string
	start time.Time
}

// slowQueryTracer logs a warning for queries slower than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	log       *zerolog.Logger
	now       func() time.Time
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStartKey{}, slowQueryStart{sql: data.SQL, start: t.now()})
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	started, ok := ctx.Value(slowQueryStartKey{}).(slowQueryStart)
	if !ok {
		return
	}

	elapsed := t.now().Sub(started.start)
	if elapsed < t.threshold {
		return
	}

	event := t.log.Warn().
		Str("sql", started.sql).
		Dur("duration", elapsed).
		Dur("threshold", t.threshold)
	if data.Err != nil {
		event = event.Err(data.Err)
	}
	event.Msg("slow query")
}

// DatabasePingTimeout is the number of seconds to wait for the startup ping
// before considering the database unreachable.
const DatabasePingTimeout = 10

// DSN builds the postgres connection string from config.
//
// A configured URL is used as is. Otherwise the discrete fields are joined,
// with the password URL-encoded so characters like ':' and '@' survive.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	// JoinHostPort adds brackets for IPv6 hosts.
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	encodedPassword := url.QueryEscape(cfg.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		encodedPassword,
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// New creates the connection pool and pings it, failing if Postgres is not
// reachable within DatabasePingTimeout.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	pgxPoolConfig.MinConns = int32(min(cfg.Database.MaxIdleConns, cfg.Database.MaxOpenConns))
	pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	if tracer := buildTracer(cfg, logger, loggerService); tracer != nil {
		pgxPoolConfig.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Pool: pool,
		log:  logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("connected to the database")

	return database, nil
}

// buildTracer assembles the tracers enabled by config. It returns nil when
// none apply, a single tracer as is, or a multiTracer for several.
func buildTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []queryTracer

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if cfg.Observability != nil && cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{
			threshold: cfg.Observability.Logging.SlowQueryThreshold,
			log:       logger,
			now:       time.Now,
		})
	}

	// full SQL logging only in local
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0]
	default:
		return &multiTracer{tracers: tracers}
	}
}

// Close closes the database connection pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
