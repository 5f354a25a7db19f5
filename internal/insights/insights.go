// Package insights generates the plain-language observations shown on the
// dashboard alongside the therapy-effect reports: trend shifts, cross-metric
// links and recent-mood summaries. Everything here is template-based and
// deterministic.
package insights

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
)

// Kind classifies an insight for icon/color selection in the UI
type Kind string

const (
	KindProgress Kind = "progress"
	KindWarning  Kind = "warning"
	KindStable   Kind = "stable"
	KindLink     Kind = "link"
	KindMood     Kind = "mood"
)

// Insight is one generated observation
type Insight struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

const (
	trendWindow     = 7
	linkMinDays     = 10
	trendThreshold  = 1.0
	linkThreshold   = -0.3
	goodMoodFloor   = 7.0
	lowMoodCeiling  = 5.0
	strongLinkBound = -0.7
	modLinkBound    = -0.5
)

// Generate produces the insight list for a subject's series. Short histories
// yield fewer (possibly zero) insights; the caller renders keep-logging
// guidance when the list is empty.
func Generate(s series.Series) []Insight {
	var out []Insight

	if in, ok := painTrend(s); ok {
		out = append(out, in)
	}
	if in, ok := sleepPainLink(s); ok {
		out = append(out, in)
	}
	if in, ok := moodSummary(s); ok {
		out = append(out, in)
	}
	return out
}

// painTrend compares mean pain over the first and last trend windows
func painTrend(s series.Series) (Insight, bool) {
	_, pain := s.MetricObservations(series.MetricPain)
	if len(pain) < trendWindow {
		return Insight{}, false
	}

	older, _ := stats.Mean(pain[:trendWindow])
	recent, _ := stats.Mean(pain[len(pain)-trendWindow:])
	change := recent - older

	switch {
	case change < -trendThreshold:
		return Insight{
			Kind:    KindProgress,
			Title:   "Positive Progress",
			Message: fmt.Sprintf("Your pain has decreased by %.1f points over the tracking period.", -change),
		}, true
	case change > trendThreshold:
		return Insight{
			Kind:    KindWarning,
			Title:   "Change Detected",
			Message: fmt.Sprintf("Your pain has increased by %.1f points recently.", change),
		}, true
	default:
		return Insight{
			Kind:    KindStable,
			Title:   "Stable Pattern",
			Message: "Your pain levels have remained relatively stable. Continue tracking to identify patterns.",
		}, true
	}
}

// sleepPainLink surfaces a negative sleep-pain correlation in user-friendly
// strength wording
func sleepPainLink(s series.Series) (Insight, bool) {
	x, _ := s.PairedObservations(series.MetricSleepHours, series.MetricPain)
	if len(x) < linkMinDays {
		return Insight{}, false
	}

	cs := analysis.Correlate(s, []series.Metric{series.MetricSleepHours, series.MetricPain}, analysis.DefaultMinOverlap)
	r, ok := analysis.LookupCorrelation(cs, series.MetricSleepHours, series.MetricPain)
	if !ok || r >= linkThreshold {
		return Insight{}, false
	}

	strength := "weak"
	if r < strongLinkBound {
		strength = "strong"
	} else if r < modLinkBound {
		strength = "moderate"
	}

	return Insight{
		Kind:    KindLink,
		Title:   "Sleep-Pain Connection",
		Message: fmt.Sprintf("Your data shows a %s link between better sleep and lower pain. When you sleep more, your pain tends to decrease.", strength),
	}, true
}

// moodSummary reports the recent mood average when it is notably high or low
func moodSummary(s series.Series) (Insight, bool) {
	_, mood := s.MetricObservations(series.MetricMood)
	if len(mood) < trendWindow {
		return Insight{}, false
	}

	recent, _ := stats.Mean(mood[len(mood)-trendWindow:])
	switch {
	case recent >= goodMoodFloor:
		return Insight{
			Kind:    KindMood,
			Title:   "Positive Mood Trend",
			Message: fmt.Sprintf("Your mood has been trending positive (avg: %.1f/10).", recent),
		}, true
	case recent < lowMoodCeiling:
		return Insight{
			Kind:    KindMood,
			Title:   "Mood Pattern Noted",
			Message: fmt.Sprintf("Your mood scores have been lower (avg: %.1f/10).", recent),
		}, true
	}
	return Insight{}, false
}
