// Package server provides the HTTP facade for the calculator: routing,
// per-client rate limiting, request IDs, health endpoints, and graceful
// shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

type contextKey string

const contextKeyRequestID contextKey = "request_id"

// Server serves the calculator API.
type Server struct {
	name    string
	version string
	config  *Config
	routes  map[string]http.HandlerFunc

	mu       sync.RWMutex
	ready    bool
	limiters map[string]*rate.Limiter
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the component name reported on the default route.
func WithName(name string) Option {
	return func(s *Server) { s.name = name }
}

// WithVersion sets the version reported on the default route.
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) { s.config = cfg }
}

// WithHandler registers API routes; each handler is wrapped with the standard
// middleware chain.
func WithHandler(routes map[string]http.HandlerFunc) Option {
	return func(s *Server) { s.routes = routes }
}

// New returns a configured server.
func New(opts ...Option) *Server {
	s := &Server{
		name:     "nutrictl-api",
		version:  "dev",
		config:   DefaultConfig(),
		limiters: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the HTTP server and blocks until ctx is canceled or the listener
// fails. Shutdown is graceful, bounded by the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Address, s.config.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		s.mu.Lock()
		s.ready = false
		s.mu.Unlock()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		slog.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// withMiddleware wraps a handler with request ID assignment, per-client rate
// limiting, and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))
		w.Header().Set("X-Request-Id", requestID)

		if !s.limiterFor(r.RemoteAddr).Allow() {
			WriteError(w, r, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
			return
		}

		start := time.Now()
		next(w, r)
		slog.Debug("request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// limiterFor returns the rate limiter for a client, creating it on first
// use. Clients are keyed by host so that reconnects from ephemeral ports
// share one budget.
func (s *Server) limiterFor(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
		s.limiters[host] = limiter
	}
	return limiter
}
