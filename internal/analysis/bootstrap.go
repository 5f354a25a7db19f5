package analysis

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"painreliefmap/domain/effect"
)

// BootstrapCI estimates a percentile confidence interval around the mean
// difference by resampling with replacement, independently of any normality
// assumption. Each iteration draws an equal-size resample from each window
// and records mean(afterResample) - mean(beforeResample); the interval is
// the (1-confidence)/2 and 1-(1-confidence)/2 ranked values of the
// accumulated differences.
//
// With opts.Seed set the resampling stream is fully reproducible: same seed
// and same inputs give a byte-identical interval. With Seed zero the stream
// is seeded from the clock, which is the intended production behavior.
func BootstrapCI(before, after []float64, opts effect.Options) effect.Interval {
	opts = opts.Normalize()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	diffs := make([]float64, opts.BootstrapIterations)
	for i := range diffs {
		diffs[i] = resampleMean(rng, after) - resampleMean(rng, before)
	}
	sort.Float64s(diffs)

	alpha := 1 - opts.ConfidenceLevel
	return effect.Interval{
		Low:        rankedValue(diffs, alpha/2),
		High:       rankedValue(diffs, 1-alpha/2),
		Confidence: opts.ConfidenceLevel,
		Iterations: opts.BootstrapIterations,
	}
}

// resampleMean draws len(values) samples with replacement and returns their
// mean
func resampleMean(rng *rand.Rand, values []float64) float64 {
	sum := 0.0
	for range values {
		sum += values[rng.Intn(len(values))]
	}
	return sum / float64(len(values))
}

// rankedValue returns the q-th quantile of sorted by the nearest-rank method:
// for 1000 iterations at 95% confidence this selects the 25th and 975th
// ranked values.
func rankedValue(sorted []float64, q float64) float64 {
	idx := int(math.Ceil(q*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
