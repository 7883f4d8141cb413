package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/eulerbatch/internal/batch"
	"github.com/agbru/eulerbatch/internal/config"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/logging"
	"github.com/agbru/eulerbatch/internal/service"
)

// Server represents the HTTP server for the eulerbatch API.
// It wraps the standard http.Server and adds application-specific
// configuration and graceful shutdown capabilities.
type Server struct {
	service        service.Service
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	shutdownSignal chan os.Signal
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer creates a new Server instance with the given configuration.
// It initializes the HTTP server with timeouts and a request multiplexer.
//
// Parameters:
//   - cfg: The application configuration (port, limits, etc.).
//   - opts: Optional functional options for customizing the server
//     (e.g., WithLogger, WithService).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		shutdownSignal: make(chan os.Signal, 1),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}

	// Apply any provided options
	for _, opt := range opts {
		opt(s)
	}

	// Initialize service if not provided
	if s.service == nil {
		solver := batch.NewSolver(nil, batch.WithLogger(s.logger))
		s.service = service.NewSolverService(solver, cfg.MaxQueries)
	}

	// Create default rate limiter if not provided
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	mux := http.NewServeMux()

	// Apply middleware chain: Security -> RateLimit -> Logging -> Metrics -> Handler
	mux.HandleFunc("/solve", s.wrapWithMiddleware(s.handleSolve))
	mux.HandleFunc("/sum", s.wrapWithMiddleware(s.handleSum))
	mux.HandleFunc("/fibonacci/even", s.wrapWithMiddleware(s.handleFibonacci))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/limits", s.wrapWithMiddleware(s.handleLimits))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// wrapWithMiddleware applies the full middleware chain to a handler.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	// Apply in reverse order: Security -> RateLimit -> Logging -> Metrics -> Handler
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = RateLimitMiddleware(s.rateLimiter, wrapped)
	wrapped = SecurityMiddleware(s.securityConfig, wrapped)
	return wrapped
}

// Start initializes and starts the HTTP server.
// It listens for incoming requests on the configured port and handles system
// signals (SIGINT, SIGTERM) to ensure a graceful shutdown. The serve and
// signal-watching goroutines are coordinated through an errgroup so a failure
// in either tears both down.
//
// Returns:
//   - error: An error if the server fails to start or shuts down unexpectedly.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		s.logger.Info("starting server",
			logging.String("addr", s.httpServer.Addr),
			logging.Int("max_queries", s.cfg.MaxQueries),
			logging.Uint64("max_bound", s.securityConfig.MaxBound),
		)
		s.logger.Println("Available endpoints:")
		s.logger.Println("  POST /solve")
		s.logger.Println("  GET  /sum?n=<bound>")
		s.logger.Println("  GET  /fibonacci/even?limit=<bound>&filter=<all|even|odd>")
		s.logger.Println("  GET  /health")
		s.logger.Println("  GET  /limits")
		s.logger.Println("  GET  /metrics")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.NewServerError("server failed to start", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-s.shutdownSignal:
			s.logger.Println("Shutdown signal received, initiating graceful shutdown...")
		case <-ctx.Done():
			// Serve goroutine already failed; nothing to shut down gracefully.
			return nil
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.NewServerError("failed to gracefully shutdown server", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.rateLimiter.Stop()
	s.logger.Println("Server stopped gracefully")
	return nil
}

// TriggerShutdown requests a graceful shutdown as if a signal had arrived.
// Primarily used by tests and the application layer.
func (s *Server) TriggerShutdown() {
	select {
	case s.shutdownSignal <- syscall.SIGTERM:
	default:
	}
}

// solveTimeout bounds a request context with the configured request timeout.
func (s *Server) solveTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if s.timeouts.RequestTimeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, s.timeouts.RequestTimeout)
}

// formatDuration renders a request duration for JSON responses.
func formatDuration(d time.Duration) string {
	return d.String()
}
