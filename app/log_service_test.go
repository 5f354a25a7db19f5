package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painreliefmap/domain/core"
	"painreliefmap/models"
)

// fakeLogRepository is an in-memory ports.LogRepository keyed by log date
type fakeLogRepository struct {
	entries map[string]models.LogEntry
}

func newFakeLogRepository() *fakeLogRepository {
	return &fakeLogRepository{entries: make(map[string]models.LogEntry)}
}

func (f *fakeLogRepository) key(userID uuid.UUID, date time.Time) string {
	return userID.String() + "/" + date.Format(core.DayLayout)
}

func (f *fakeLogRepository) UpsertLog(_ context.Context, entry *models.LogEntry) error {
	f.entries[f.key(entry.UserID, entry.LogDate)] = *entry
	return nil
}

func (f *fakeLogRepository) GetLogs(_ context.Context, userID uuid.UUID, from, to time.Time) ([]models.LogEntry, error) {
	var out []models.LogEntry
	for _, e := range f.entries {
		if e.UserID != userID {
			continue
		}
		if !from.IsZero() && e.LogDate.Before(from) {
			continue
		}
		if !to.IsZero() && e.LogDate.After(to) {
			continue
		}
		out = append(out, e)
	}
	// map iteration is unordered; callers sort via Series.Sorted
	return out, nil
}

func (f *fakeLogRepository) DeleteLog(_ context.Context, userID uuid.UUID, logDate time.Time) error {
	k := f.key(userID, logDate)
	if _, ok := f.entries[k]; !ok {
		return core.ErrLogNotFound
	}
	delete(f.entries, k)
	return nil
}

func (f *fakeLogRepository) DeleteAllLogs(_ context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for k, e := range f.entries {
		if e.UserID == userID {
			delete(f.entries, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeLogRepository) CountLogs(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, e := range f.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

func ptr(v float64) *float64 { return &v }

func validEntry(userID uuid.UUID) *models.LogEntry {
	return &models.LogEntry{
		UserID:    userID,
		LogDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PainScore: ptr(6),
	}
}

func TestSaveLogValidEntry(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()

	err := svc.SaveLog(context.Background(), validEntry(userID))
	require.NoError(t, err)

	logs, err := svc.GetLogs(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestSaveLogUpsertsSameDay(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()

	first := validEntry(userID)
	require.NoError(t, svc.SaveLog(context.Background(), first))

	second := validEntry(userID)
	second.PainScore = ptr(3)
	require.NoError(t, svc.SaveLog(context.Background(), second))

	logs, err := svc.GetLogs(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, logs, 1, "same day must replace, not duplicate")
	assert.Equal(t, 3.0, *logs[0].PainScore)
}

func TestSaveLogRejectsMalformed(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()

	tests := []struct {
		name  string
		entry *models.LogEntry
	}{
		{"nil entry", nil},
		{"missing user", &models.LogEntry{LogDate: time.Now(), PainScore: ptr(5)}},
		{"zero date", &models.LogEntry{UserID: userID, PainScore: ptr(5)}},
		{"pain above range", func() *models.LogEntry {
			e := validEntry(userID)
			e.PainScore = ptr(11)
			return e
		}()},
		{"negative pain", func() *models.LogEntry {
			e := validEntry(userID)
			e.PainScore = ptr(-1)
			return e
		}()},
		{"sleep above 24h", func() *models.LogEntry {
			e := validEntry(userID)
			e.SleepHours = ptr(25)
			return e
		}()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SaveLog(context.Background(), tc.entry)
			require.Error(t, err)
			assert.True(t, core.IsMalformedRecordError(err), "want malformed-record error, got %v", err)
		})
	}

	logs, err := svc.GetLogs(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, logs, "rejected entries must never reach storage")
}

func TestSaveLogAcceptsSparseEntry(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()

	// Only sleep logged; every other metric nil
	entry := &models.LogEntry{
		UserID:     userID,
		LogDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SleepHours: ptr(7.5),
	}
	assert.NoError(t, svc.SaveLog(context.Background(), entry))
}

func TestDeleteLog(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.SaveLog(context.Background(), validEntry(userID)))
	require.NoError(t, svc.DeleteLog(context.Background(), userID, date))

	err := svc.DeleteLog(context.Background(), userID, date)
	assert.True(t, core.IsNotFoundError(err), "second delete must report not found")
}

func TestDeleteAllLogs(t *testing.T) {
	repo := newFakeLogRepository()
	svc := NewLogService(repo)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		e := validEntry(userID)
		e.LogDate = e.LogDate.AddDate(0, 0, i)
		require.NoError(t, svc.SaveLog(context.Background(), e))
	}

	n, err := svc.DeleteAllLogs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
