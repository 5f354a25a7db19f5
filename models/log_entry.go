package models

import (
	"time"

	"github.com/google/uuid"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
)

// LogEntry is one user_logs row: a subject-day of tracked metrics. Metric
// columns are nullable; NULL means the metric was not logged that day and is
// carried through to the engine as missing, never as zero.
type LogEntry struct {
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	LogDate        time.Time `db:"log_date" json:"log_date"`
	PainScore      *float64  `db:"pain_score" json:"pain_score,omitempty"`
	StressScore    *float64  `db:"stress_score" json:"stress_score,omitempty"`
	AnxietyScore   *float64  `db:"anxiety_score" json:"anxiety_score,omitempty"`
	MoodScore      *float64  `db:"mood_score" json:"mood_score,omitempty"`
	SleepHours     *float64  `db:"sleep_hours" json:"sleep_hours,omitempty"`
	TherapyStarted string    `db:"therapy_started" json:"therapy_started,omitempty"`
	GoodDay        bool      `db:"good_day" json:"good_day"`
	Notes          string    `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// ToRecord converts a row into the engine's read-only series record
func (e LogEntry) ToRecord() series.Record {
	rec := series.Record{
		Date:    core.NewDay(e.LogDate),
		Metrics: make(map[series.Metric]float64),
		GoodDay: e.GoodDay,
	}
	setMetric(rec.Metrics, series.MetricPain, e.PainScore)
	setMetric(rec.Metrics, series.MetricStress, e.StressScore)
	setMetric(rec.Metrics, series.MetricAnxiety, e.AnxietyScore)
	setMetric(rec.Metrics, series.MetricMood, e.MoodScore)
	setMetric(rec.Metrics, series.MetricSleepHours, e.SleepHours)
	if e.TherapyStarted != "" {
		rec.Therapies = []series.TherapyName{series.TherapyName(e.TherapyStarted)}
	}
	return rec
}

func setMetric(m map[series.Metric]float64, key series.Metric, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

// FromRecord converts an engine record back into a row for persistence.
// Only the first therapy marker survives; the table stores one per day.
func FromRecord(userID uuid.UUID, rec series.Record) LogEntry {
	entry := LogEntry{
		UserID:  userID,
		LogDate: rec.Date.Time(),
		GoodDay: rec.GoodDay,
	}
	entry.PainScore = metricPtr(rec, series.MetricPain)
	entry.StressScore = metricPtr(rec, series.MetricStress)
	entry.AnxietyScore = metricPtr(rec, series.MetricAnxiety)
	entry.MoodScore = metricPtr(rec, series.MetricMood)
	entry.SleepHours = metricPtr(rec, series.MetricSleepHours)
	if len(rec.Therapies) > 0 {
		entry.TherapyStarted = string(rec.Therapies[0])
	}
	return entry
}

func metricPtr(rec series.Record, key series.Metric) *float64 {
	if v, ok := rec.Metric(key); ok {
		return &v
	}
	return nil
}

// ToSeries converts a date-ordered slice of rows into a Series snapshot
func ToSeries(entries []LogEntry) series.Series {
	out := make(series.Series, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ToRecord())
	}
	return out
}

// Therapy is one therapies row: a named treatment with its tracking span
type Therapy struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Name      string     `db:"therapy_name" json:"therapy_name"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   *time.Time `db:"end_date" json:"end_date,omitempty"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	Notes     string     `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
