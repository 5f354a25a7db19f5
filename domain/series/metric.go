package series

import (
	"painreliefmap/domain/core"
)

// Metric identifies one tracked daily measurement. Metrics are a closed set:
// validating keys at the boundary catches misspellings before they silently
// produce empty analysis windows.
type Metric string

const (
	MetricPain       Metric = "pain_score"
	MetricStress     Metric = "stress_score"
	MetricAnxiety    Metric = "anxiety_score"
	MetricMood       Metric = "mood_score"
	MetricSleepHours Metric = "sleep_hours"
)

// KnownMetrics lists every metric the engine accepts, in stable order.
func KnownMetrics() []Metric {
	return []Metric{
		MetricPain,
		MetricStress,
		MetricAnxiety,
		MetricMood,
		MetricSleepHours,
	}
}

// IsKnown reports whether m is one of the tracked metrics
func (m Metric) IsKnown() bool {
	switch m {
	case MetricPain, MetricStress, MetricAnxiety, MetricMood, MetricSleepHours:
		return true
	}
	return false
}

// String returns the metric key
func (m Metric) String() string {
	return string(m)
}

// ParseMetric validates a metric key from an external caller
func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if !m.IsKnown() {
		return "", core.ErrUnknownMetric
	}
	return m, nil
}

// Range returns the documented inclusive value range for a metric. Scores are
// 0-10 scales; sleep is hours per day.
func (m Metric) Range() (low, high float64) {
	if m == MetricSleepHours {
		return 0, 24
	}
	return 0, 10
}

// TherapyName is a free-text therapy label. Matching is case-sensitive and
// exact; callers own consistent naming.
type TherapyName string

// String returns the therapy label
func (t TherapyName) String() string {
	return string(t)
}
