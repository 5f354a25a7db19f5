package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"painreliefmap/domain/series"
)

// DefaultMinOverlap is the minimum number of paired observations before a
// correlation coefficient is reported. Two or three shared days can fabricate
// a spurious near-perfect correlation, so pairs below the floor report nil.
const DefaultMinOverlap = 5

// MetricCorrelation is the Pearson association between two metrics over the
// dates where both were logged. R is nil when the pair had fewer than the
// minimum overlapping observations, or when either side had zero variance.
type MetricCorrelation struct {
	MetricX series.Metric `json:"metric_x"`
	MetricY series.Metric `json:"metric_y"`
	N       int           `json:"n"`
	R       *float64      `json:"r,omitempty"`
}

// Correlate computes pairwise Pearson correlations across the provided
// metrics over the whole series, pairwise-complete-case: each pair uses every
// date where both metrics are present, regardless of other metrics'
// missingness. The output contains each unordered pair once
// (correlate(a,b) == correlate(b,a)); self-pairs are omitted since a metric's
// correlation with itself is 1 by definition.
func Correlate(s series.Series, metrics []series.Metric, minOverlap int) []MetricCorrelation {
	if minOverlap <= 0 {
		minOverlap = DefaultMinOverlap
	}

	var out []MetricCorrelation
	for i := 0; i < len(metrics); i++ {
		for j := i + 1; j < len(metrics); j++ {
			x, y := s.PairedObservations(metrics[i], metrics[j])
			mc := MetricCorrelation{MetricX: metrics[i], MetricY: metrics[j], N: len(x)}
			if len(x) >= minOverlap {
				r := stat.Correlation(x, y, nil)
				if !math.IsNaN(r) {
					mc.R = &r
				}
			}
			out = append(out, mc)
		}
	}
	return out
}

// LookupCorrelation finds the coefficient for an unordered metric pair
func LookupCorrelation(cs []MetricCorrelation, a, b series.Metric) (float64, bool) {
	for _, c := range cs {
		if (c.MetricX == a && c.MetricY == b) || (c.MetricX == b && c.MetricY == a) {
			if c.R == nil {
				return 0, false
			}
			return *c.R, true
		}
	}
	return 0, false
}
