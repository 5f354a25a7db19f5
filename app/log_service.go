package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
	"painreliefmap/models"
	"painreliefmap/ports"
)

// LogService owns the ingestion side of the storage collaborator: it
// validates incoming rows before they are stored, so the analysis engine can
// assume validated input and never re-checks ranges.
type LogService struct {
	logs ports.LogRepository
}

// NewLogService creates the log service
func NewLogService(logs ports.LogRepository) *LogService {
	return &LogService{logs: logs}
}

// SaveLog validates and upserts one subject-day. A record with an invalid
// date or a metric value outside its documented range is rejected as
// malformed; absent metric values are legal and stored as NULL.
func (s *LogService) SaveLog(ctx context.Context, entry *models.LogEntry) error {
	if err := validateEntry(entry); err != nil {
		return err
	}
	return s.logs.UpsertLog(ctx, entry)
}

// GetLogs loads a user's full history ordered by date
func (s *LogService) GetLogs(ctx context.Context, userID uuid.UUID) ([]models.LogEntry, error) {
	return s.logs.GetLogs(ctx, userID, time.Time{}, time.Time{})
}

// DeleteLog removes one day's entry
func (s *LogService) DeleteLog(ctx context.Context, userID uuid.UUID, logDate time.Time) error {
	return s.logs.DeleteLog(ctx, userID, logDate)
}

// DeleteAllLogs wipes a user's history and reports how many rows went
func (s *LogService) DeleteAllLogs(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.logs.DeleteAllLogs(ctx, userID)
}

func validateEntry(entry *models.LogEntry) error {
	if entry == nil {
		return core.NewMalformedRecordError("entry", "is nil")
	}
	if entry.UserID == uuid.Nil {
		return core.NewMalformedRecordError("user_id", "is empty")
	}
	if entry.LogDate.IsZero() {
		return core.NewMalformedRecordError("log_date", "is empty")
	}

	checks := []struct {
		metric series.Metric
		value  *float64
	}{
		{series.MetricPain, entry.PainScore},
		{series.MetricStress, entry.StressScore},
		{series.MetricAnxiety, entry.AnxietyScore},
		{series.MetricMood, entry.MoodScore},
		{series.MetricSleepHours, entry.SleepHours},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		low, high := c.metric.Range()
		if *c.value < low || *c.value > high {
			return core.NewMalformedRecordError(string(c.metric), "out of range")
		}
	}
	return nil
}
