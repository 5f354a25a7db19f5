package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"painreliefmap/domain/core"
	"painreliefmap/models"
	"painreliefmap/ports"
)

// TherapyRepositoryImpl implements TherapyRepository for PostgreSQL
type TherapyRepositoryImpl struct {
	db *sqlx.DB
}

// NewTherapyRepository creates a new PostgreSQL therapy repository
func NewTherapyRepository(db *sqlx.DB) ports.TherapyRepository {
	return &TherapyRepositoryImpl{db: db}
}

// serializationRetries caps replays of a serialization-failed upsert
const serializationRetries = 3

// SaveTherapy upserts by (user_id, therapy_name)
func (r *TherapyRepositoryImpl) SaveTherapy(ctx context.Context, therapy *models.Therapy) error {
	if therapy.ID == uuid.Nil {
		therapy.ID = uuid.New()
	}

	// Concurrent first-writes race on the unique key; the conflict clause
	// covers the row, so a serialization failure is the only retryable
	// case left.
	var err error
	for attempt := 0; attempt <= serializationRetries; attempt++ {
		_, err = r.db.NamedExecContext(ctx, `
			INSERT INTO therapies (id, user_id, therapy_name, start_date, end_date, is_active, notes, created_at)
			VALUES (:id, :user_id, :therapy_name, :start_date, :end_date, :is_active, :notes, NOW())
			ON CONFLICT (user_id, therapy_name) DO UPDATE SET
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date,
				is_active = EXCLUDED.is_active,
				notes = EXCLUDED.notes
		`, therapy)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure matches PostgreSQL's serialization_failure SQLSTATE
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}

// ActiveTherapies returns therapies without an end date, name-ordered
func (r *TherapyRepositoryImpl) ActiveTherapies(ctx context.Context, userID uuid.UUID) ([]models.Therapy, error) {
	var therapies []models.Therapy
	err := r.db.SelectContext(ctx, &therapies, `
		SELECT id, user_id, therapy_name, start_date, end_date, is_active, notes, created_at
		FROM therapies
		WHERE user_id = $1 AND is_active = TRUE AND end_date IS NULL
		ORDER BY therapy_name ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	return therapies, nil
}

// EndTherapy closes a therapy's span at the given date
func (r *TherapyRepositoryImpl) EndTherapy(ctx context.Context, userID uuid.UUID, name string, endDate time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE therapies
		SET end_date = $3, is_active = FALSE
		WHERE user_id = $1 AND therapy_name = $2
	`, userID, name, endDate)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrNotFound
	}
	return nil
}
