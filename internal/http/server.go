// Package http provides the HTTP server implementation and route registration.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cipherHTTP "github.com/allisson/cryptokit/internal/cipher/http"
	"github.com/allisson/cryptokit/internal/config"
	keysHTTP "github.com/allisson/cryptokit/internal/keys/http"
	"github.com/allisson/cryptokit/internal/metrics"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	cipherHandler *cipherHTTP.CipherHandler,
	keyHandler *keysHTTP.KeyHandler,
	metricsProvider *metrics.Provider,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	s := &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
	s.router = s.setupRouter(cfg, cipherHandler, keyHandler, metricsProvider)

	return s
}

// setupRouter builds the gin engine with middleware and routes.
func (s *Server) setupRouter(
	cfg *config.Config,
	cipherHandler *cipherHTTP.CipherHandler,
	keyHandler *keysHTTP.KeyHandler,
	metricsProvider *metrics.Provider,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.RateLimitEnabled {
		router.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	{
		v1.GET("/algorithms", cipherHandler.ListAlgorithmsHandler)
		v1.POST("/encrypt", cipherHandler.EncryptHandler)
		v1.POST("/decrypt", cipherHandler.DecryptHandler)

		v1.POST("/keypairs", keyHandler.CreateKeyPairHandler)
		v1.POST("/keys/:type/load", keyHandler.LoadKeyHandler)
		v1.POST("/keys/:type/base64", keyHandler.EncodeKeyHandler)
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness to serve traffic. The service holds no
// external dependencies, so readiness follows liveness.
func (s *Server) readinessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Router returns the gin engine for testing purposes.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
