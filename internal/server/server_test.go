package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/sixfigure-api/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	logger := zerolog.Nop()
	return &Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:         "0",
				ReadTimeout:  10,
				WriteTimeout: 15,
				IdleTimeout:  60,
			},
			Redis: config.RedisConfig{Address: "localhost:6379"},
		},
		Logger: &logger,
	}
}

func TestStart_RequiresSetup(t *testing.T) {
	assert.EqualError(t, testServer().Start(), "HTTP server not initialized")
}

func TestSetupHTTPServer(t *testing.T) {
	s := testServer()
	s.SetupHTTPServer(http.NotFoundHandler())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":0", s.httpServer.Addr)
	assert.Equal(t, 10*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, time.Minute, s.httpServer.IdleTimeout)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testServer().Config
	cfg.Redis.Address = mr.Addr()

	client := newRedisClient(cfg, nil)
	defer client.Close()

	require.NoError(t, client.Ping(context.Background()).Err())
}

func TestShutdown_ClosesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	s := testServer()
	s.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.SetupHTTPServer(http.NotFoundHandler())

	require.NoError(t, s.Shutdown(context.Background()))
	assert.ErrorIs(t, s.Redis.Ping(context.Background()).Err(), redis.ErrClosed)
}
