package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/antekerwin/jeki/internal/adapters/outbound/metrics"
	"github.com/antekerwin/jeki/internal/application"
	"github.com/antekerwin/jeki/internal/domain"
)

const shutdownTimeout = 10 * time.Second

// Server is the JSON HTTP API over the shared services.
type Server struct {
	router   *mux.Router
	server   *http.Server
	services *application.Services
	logger   *zap.Logger
	metrics  *metrics.Metrics
	limiter  *clientLimiter
}

// New builds the router and the underlying http.Server. gatherer may be nil,
// in which case /metrics is not mounted.
func New(
	cfg domain.ServerConfig,
	svc *application.Services,
	logger *zap.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		router:   mux.NewRouter(),
		services: svc,
		logger:   logger,
		metrics:  m,
		limiter:  newClientLimiter(cfg.RateLimit, cfg.RateBurst),
	}
	s.setupRoutes(gatherer)

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.metricsMiddleware)

	// Probes and scrapes skip the rate limiter.
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	if gatherer != nil {
		s.router.Handle("/metrics", metrics.Handler(gatherer)).Methods(http.MethodGet)
	}

	s.router.Handle("/", s.limited(s.handleHome)).Methods(http.MethodGet)
	s.router.Handle("/analyze", s.limited(s.handleAnalyze)).Methods(http.MethodPost)
	s.router.Handle("/generate", s.limited(s.handleGenerate)).Methods(http.MethodPost)
	s.router.Handle("/leaderboard", s.limited(s.handleLeaderboard)).Methods(http.MethodGet)
	s.router.Handle("/rules", s.limited(s.handleRules)).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
