// Package analysis implements the N-of-1 therapy-effect engine: splitting a
// subject's sparse daily series around an intervention date, gating on
// minimum sample sizes, and estimating effect size and significance for a
// single target metric. Every entry point is a pure function of its inputs;
// the package holds no state between calls.
package analysis

import (
	"painreliefmap/domain/core"
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
)

// Split partitions the series into before/after windows around the earliest
// start of therapy. The start day itself counts as day 1 of treatment, so it
// lands in the After window. Records missing the target metric are excluded
// from both windows rather than imputed; silently dropping them keeps the
// sample counts honest instead of biasing the means toward a default.
//
// Returns core.ErrNoInterventionFound when the therapy was never marked
// started anywhere in the series, core.ErrEmptySeries when there are no
// records at all.
func Split(s series.Series, metric series.Metric, therapy series.TherapyName) (before, after effect.AnalysisWindow, err error) {
	if !metric.IsKnown() {
		return before, after, core.ErrUnknownMetric
	}
	if s.Len() == 0 {
		return before, after, core.ErrEmptySeries
	}

	start, err := s.InterventionDate(therapy)
	if err != nil {
		return before, after, err
	}

	before = effect.AnalysisWindow{Kind: effect.WindowBefore, Metric: metric}
	after = effect.AnalysisWindow{Kind: effect.WindowAfter, Metric: metric}

	dates, values := s.MetricObservations(metric)
	for i, d := range dates {
		if d.Before(start) {
			before.Dates = append(before.Dates, d)
			before.Values = append(before.Values, values[i])
		} else {
			after.Dates = append(after.Dates, d)
			after.Values = append(after.Values, values[i])
		}
	}

	return before, after, nil
}
