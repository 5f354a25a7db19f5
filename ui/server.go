// Package ui serves the tracker application: daily log entry, therapy
// tracking, and the analytics dashboard built on the effect engine.
package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"painreliefmap/domain/core"
	"painreliefmap/internal"
	"painreliefmap/internal/container"
	"painreliefmap/internal/errors"
)

// defaultUserID backs single-user deployments where no X-User-ID header is
// sent.
const defaultUserID = "550e8400-e29b-41d4-a716-446655440000"

// Server represents the tracker web server
type Server struct {
	router *gin.Engine
	c      *container.Container
	logger *internal.Logger
}

// NewServer creates a new web server instance around the container
func NewServer(c *container.Container) *Server {
	gin.SetMode(c.Config.Server.GinMode)

	s := &Server{
		router: gin.Default(),
		c:      c,
		logger: internal.NewDefaultLogger(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/logs", s.handleSaveLog)
		api.GET("/logs", s.handleListLogs)
		api.DELETE("/logs/:date", s.handleDeleteLog)
		api.DELETE("/logs", s.handleDeleteAllLogs)
		api.POST("/demo", s.handleSeedDemo)

		api.POST("/therapies", s.handleSaveTherapy)
		api.GET("/therapies", s.handleListTherapies)
		api.POST("/therapies/:name/end", s.handleEndTherapy)

		api.GET("/dashboard", s.handleDashboard)
		api.GET("/effects/:therapy", s.handleTherapyEffect)
		api.GET("/correlations", s.handleCorrelations)
		api.GET("/insights", s.handleInsights)

		api.GET("/report/:therapy", s.handleTherapyReport)
		api.GET("/export.xlsx", s.handleExport)
	}
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting tracker UI on http://%s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.c.DB.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// userID resolves the acting user from the X-User-ID header, falling back to
// the single-user default.
func userID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		raw = defaultUserID
	}
	return uuid.Parse(raw)
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsUsageError(err), core.IsMalformedRecordError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
	}
}
