package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"painreliefmap/internal/errors"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createUserLogsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create user_logs table")
	}
	if err := r.createTherapiesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create therapies table")
	}
	return nil
}

func (r *MigrationRunner) createUserLogsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_logs (
			user_id UUID NOT NULL,
			log_date DATE NOT NULL,
			pain_score DOUBLE PRECISION,
			stress_score DOUBLE PRECISION,
			anxiety_score DOUBLE PRECISION,
			mood_score DOUBLE PRECISION,
			sleep_hours DOUBLE PRECISION,
			therapy_started TEXT NOT NULL DEFAULT '',
			good_day BOOLEAN NOT NULL DEFAULT FALSE,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, log_date)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_user_logs_therapy
		ON user_logs (user_id, therapy_started)
		WHERE therapy_started <> ''
	`)
	return err
}

func (r *MigrationRunner) createTherapiesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS therapies (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			therapy_name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, therapy_name)
		)
	`)
	return err
}
