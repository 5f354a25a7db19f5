package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"painreliefmap/adapters/postgres"
	"painreliefmap/app"
	"painreliefmap/internal/analysis"
	"painreliefmap/internal/config"
	"painreliefmap/internal/errors"
	"painreliefmap/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	LogRepo     ports.LogRepository
	TherapyRepo ports.TherapyRepository

	// Engine
	Analyzer *analysis.Analyzer

	// Services
	LogService      *app.LogService
	AnalysisService *app.AnalysisService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{
		Config:   cfg,
		Analyzer: analysis.NewAnalyzer(cfg.EngineOptions()),
	}, nil
}

// InitWithDatabase wires the components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return errors.WithCode(errors.CodeDatabaseError, err)
	}

	c.DB = db
	c.LogRepo = postgres.NewLogRepository(db)
	c.TherapyRepo = postgres.NewTherapyRepository(db)

	c.LogService = app.NewLogService(c.LogRepo)
	c.AnalysisService = app.NewAnalysisService(c.LogRepo, c.Analyzer)

	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
