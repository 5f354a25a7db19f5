package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"painreliefmap/models"
)

// LogRepository is the storage collaborator for daily log rows. The engine
// never touches storage; callers load a snapshot through this port and hand
// the resulting series to the engine.
type LogRepository interface {
	// UpsertLog inserts or updates the row keyed (user_id, log_date)
	UpsertLog(ctx context.Context, entry *models.LogEntry) error

	// GetLogs returns a user's rows ordered by log_date ascending. Zero
	// from/to mean an unbounded range on that side.
	GetLogs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.LogEntry, error)

	// DeleteLog removes one row; core.ErrLogNotFound when absent
	DeleteLog(ctx context.Context, userID uuid.UUID, logDate time.Time) error

	// DeleteAllLogs removes every row for the user and reports the count
	DeleteAllLogs(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountLogs returns the user's total logged days
	CountLogs(ctx context.Context, userID uuid.UUID) (int, error)
}

// TherapyRepository stores named therapies and their tracking spans
type TherapyRepository interface {
	// SaveTherapy upserts by (user_id, therapy_name)
	SaveTherapy(ctx context.Context, therapy *models.Therapy) error

	// ActiveTherapies returns therapies without an end date, name-ordered
	ActiveTherapies(ctx context.Context, userID uuid.UUID) ([]models.Therapy, error)

	// EndTherapy closes a therapy's span at the given date
	EndTherapy(ctx context.Context, userID uuid.UUID, name string, endDate time.Time) error
}
