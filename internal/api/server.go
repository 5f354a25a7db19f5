// Package api exposes the effect engine over HTTP without any storage
// attached. Callers POST their own records and get results back; nothing is
// persisted between requests. The tracker UI in ui/ is the stateful surface,
// this one exists for scripting and batch use.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"painreliefmap/internal"
	"painreliefmap/internal/analysis"
)

// Server is the headless engine API
type Server struct {
	router   *chi.Mux
	analyzer *analysis.Analyzer
	logger   *internal.Logger
}

// NewServer creates the engine API server around one analyzer
func NewServer(analyzer *analysis.Analyzer) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		analyzer: analyzer,
		logger:   internal.NewDefaultLogger(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/effect", s.handleEffect)
		r.Post("/correlations", s.handleCorrelations)
		r.Get("/metrics", s.handleMetrics)
	})
}

// Handler returns the router for mounting or for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves the API on the given address until the listener fails
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting engine API on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
