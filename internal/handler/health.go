package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/deppfellow/sixfigure-api/internal/middleware"
	"github.com/deppfellow/sixfigure-api/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	welcomeMessage = "Six-Figure AI Engineering app is running!"
)

// Pinger is a dependency the readiness check can reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type healthCheck struct {
	name   string
	pinger Pinger
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Version     string                 `json:"version"`
	Checks      map[string]checkResult `json:"checks"`
}

type HealthHandler struct {
	Handler
	checks  []healthCheck
	timeout time.Duration
}

// NewHealthHandler registers the dependency checks enabled in
// observability.health_checks.
func NewHealthHandler(s *server.Server) *HealthHandler {
	obs := s.Config.Observability
	h := &HealthHandler{
		Handler: NewHandler(s),
		timeout: obs.HealthChecks.Timeout,
	}

	if obs.HasCheck("database") && s.DB != nil {
		h.checks = append(h.checks, healthCheck{name: "database", pinger: s.DB.Pool})
	}

	if obs.HasCheck("redis") && s.Redis != nil {
		h.checks = append(h.checks, healthCheck{name: "redis", pinger: PingerFunc(func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		})})
	}

	return h
}

// Welcome serves GET /.
func (h *HealthHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": welcomeMessage})
}

// Liveness serves GET /health. It never touches a dependency.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  statusHealthy,
		"version": config.Version,
	})
}

// CheckHealth serves GET /status: every configured dependency is pinged and
// any failure turns the response into a 503.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := readinessResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Version:     config.Version,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for _, check := range h.checks {
		result := h.runCheck(c.Request().Context(), check)
		response.Checks[check.name] = result

		if result.Status != statusHealthy {
			response.Status = statusUnhealthy
			logger.Error().
				Str("check", check.name).
				Str("response_time", result.ResponseTime).
				Str("error", result.Error).
				Msg("health check failed")
			h.recordFailure(check.name, result)
			continue
		}

		logger.Debug().
			Str("check", check.name).
			Str("response_time", result.ResponseTime).
			Msg("health check passed")
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) runCheck(parent context.Context, check healthCheck) checkResult {
	ctx, cancel := context.WithTimeout(parent, h.timeout)
	defer cancel()

	start := time.Now()
	err := check.pinger.Ping(ctx)
	result := checkResult{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		result.Status = statusUnhealthy
		result.Error = err.Error()
	}

	return result
}

// recordFailure reports a failed check to New Relic when it is enabled.
func (h *HealthHandler) recordFailure(name string, result checkResult) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    name,
		"operation":     "health_check",
		"error_type":    name + "_unhealthy",
		"response_time": result.ResponseTime,
		"error_message": result.Error,
	})
}
