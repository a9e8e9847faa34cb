package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ackhava/homepage/internal/db"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool          // allow all CORS origins (dev mode)
	RequestTimeout time.Duration // per-request limit for non-streaming routes
}

// DefaultRequestTimeout bounds ordinary requests.
const DefaultRequestTimeout = 60 * time.Second

// Server hosts the site, its API and the terminal websocket.
type Server struct {
	cfg        Config
	db         *db.DB
	logger     *slog.Logger
	router     chi.Router
	timed      chi.Router
	httpServer *http.Server
}

// New creates a server. database may be nil when history is disabled.
func New(cfg Config, database *db.DB, logger *slog.Logger) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg:    cfg,
		db:     database,
		logger: logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived connections such as the terminal websocket mount on r
	// directly; everything else goes through the timeout.
	s.timed = r.With(middleware.Timeout(s.cfg.RequestTimeout))

	s.timed.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Feature packages add their routes via RegisterRoutes.
	return r
}

// Router returns the router for ordinary request/response routes.
func (s *Server) Router() chi.Router { return s.timed }

// StreamRouter returns the router for long-lived connections. It has no
// request timeout.
func (s *Server) StreamRouter() chi.Router { return s.router }

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Database returns the history database, or nil.
func (s *Server) Database() *db.DB { return s.db }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("homepage server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
