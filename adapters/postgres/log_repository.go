package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"painreliefmap/domain/core"
	"painreliefmap/models"
	"painreliefmap/ports"
)

// LogRepositoryImpl implements LogRepository for PostgreSQL
type LogRepositoryImpl struct {
	db *sqlx.DB
}

// NewLogRepository creates a new PostgreSQL log repository
func NewLogRepository(db *sqlx.DB) ports.LogRepository {
	return &LogRepositoryImpl{db: db}
}

// UpsertLog inserts or updates the row keyed (user_id, log_date)
func (r *LogRepositoryImpl) UpsertLog(ctx context.Context, entry *models.LogEntry) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO user_logs (
			user_id, log_date, pain_score, stress_score, anxiety_score,
			mood_score, sleep_hours, therapy_started, good_day, notes,
			created_at, updated_at
		) VALUES (
			:user_id, :log_date, :pain_score, :stress_score, :anxiety_score,
			:mood_score, :sleep_hours, :therapy_started, :good_day, :notes,
			NOW(), NOW()
		)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			pain_score = EXCLUDED.pain_score,
			stress_score = EXCLUDED.stress_score,
			anxiety_score = EXCLUDED.anxiety_score,
			mood_score = EXCLUDED.mood_score,
			sleep_hours = EXCLUDED.sleep_hours,
			therapy_started = EXCLUDED.therapy_started,
			good_day = EXCLUDED.good_day,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`, entry)
	return err
}

// GetLogs returns a user's rows ordered by log_date ascending
func (r *LogRepositoryImpl) GetLogs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.LogEntry, error) {
	query := `
		SELECT user_id, log_date, pain_score, stress_score, anxiety_score,
		       mood_score, sleep_hours, therapy_started, good_day, notes,
		       created_at, updated_at
		FROM user_logs
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if !from.IsZero() {
		args = append(args, from)
		query += ` AND log_date >= $2`
	}
	if !to.IsZero() {
		args = append(args, to)
		if from.IsZero() {
			query += ` AND log_date <= $2`
		} else {
			query += ` AND log_date <= $3`
		}
	}
	query += ` ORDER BY log_date ASC`

	var entries []models.LogEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteLog removes one row
func (r *LogRepositoryImpl) DeleteLog(ctx context.Context, userID uuid.UUID, logDate time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_logs WHERE user_id = $1 AND log_date = $2
	`, userID, logDate)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrLogNotFound
	}
	return nil
}

// DeleteAllLogs removes every row for the user
func (r *LogRepositoryImpl) DeleteAllLogs(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_logs WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountLogs returns the user's total logged days
func (r *LogRepositoryImpl) CountLogs(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM user_logs WHERE user_id = $1
	`, userID)
	return count, err
}
