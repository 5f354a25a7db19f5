package analysis

import (
	"testing"

	"painreliefmap/domain/effect"
)

func seededOptions(seed int64) effect.Options {
	opts := effect.DefaultOptions()
	opts.Seed = seed
	return opts
}

func TestBootstrapCIDeterministic(t *testing.T) {
	a := BootstrapCI(painBefore, painAfter, seededOptions(42))
	b := BootstrapCI(painBefore, painAfter, seededOptions(42))

	if a != b {
		t.Errorf("Same seed produced different intervals: %+v vs %+v", a, b)
	}

	c := BootstrapCI(painBefore, painAfter, seededOptions(7))
	if a == c {
		t.Error("Different seeds produced an identical interval, resampling stream looks fixed")
	}
}

func TestBootstrapCIBracketsStrongEffect(t *testing.T) {
	ci := BootstrapCI(painBefore, painAfter, seededOptions(42))

	if ci.Iterations != 1000 {
		t.Errorf("Iterations = %d, want 1000", ci.Iterations)
	}
	if ci.Confidence != 0.95 {
		t.Errorf("Confidence = %.2f, want 0.95", ci.Confidence)
	}
	if ci.Low > ci.High {
		t.Fatalf("Interval inverted: [%.3f, %.3f]", ci.Low, ci.High)
	}

	// Point estimate is -4.27; the interval must bracket it and stay
	// entirely below zero for this strong a drop.
	pointEstimate := -4.2667
	if ci.Low > pointEstimate || ci.High < pointEstimate {
		t.Errorf("Interval [%.3f, %.3f] does not bracket the point estimate %.3f", ci.Low, ci.High, pointEstimate)
	}
	if !ci.ExcludesZero() {
		t.Errorf("Expected interval to exclude zero, got [%.3f, %.3f]", ci.Low, ci.High)
	}
}

func TestBootstrapCINullEffect(t *testing.T) {
	same := []float64{5, 6, 5, 6, 5, 6, 5, 6, 5, 6}
	ci := BootstrapCI(same, same, seededOptions(42))

	if ci.ExcludesZero() {
		t.Errorf("Identical windows should not exclude zero, got [%.3f, %.3f]", ci.Low, ci.High)
	}
}

func TestIntervalExcludesZero(t *testing.T) {
	tests := []struct {
		low, high float64
		want      bool
	}{
		{-5, -1, true},
		{1, 5, true},
		{-1, 1, false},
		{0, 2, false},
		{-2, 0, false},
	}
	for _, tc := range tests {
		iv := effect.Interval{Low: tc.low, High: tc.high}
		if iv.ExcludesZero() != tc.want {
			t.Errorf("ExcludesZero([%.1f, %.1f]) = %v, want %v", tc.low, tc.high, iv.ExcludesZero(), tc.want)
		}
	}
}

func TestRankedValue(t *testing.T) {
	sorted := make([]float64, 1000)
	for i := range sorted {
		sorted[i] = float64(i + 1)
	}

	// Nearest-rank: 2.5th percentile of 1000 values is the 25th, 97.5th is
	// the 975th.
	if got := rankedValue(sorted, 0.025); got != 25 {
		t.Errorf("rankedValue(0.025) = %.0f, want 25", got)
	}
	if got := rankedValue(sorted, 0.975); got != 975 {
		t.Errorf("rankedValue(0.975) = %.0f, want 975", got)
	}
	if got := rankedValue(sorted, 0); got != 1 {
		t.Errorf("rankedValue(0) = %.0f, want 1", got)
	}
	if got := rankedValue(sorted, 1); got != 1000 {
		t.Errorf("rankedValue(1) = %.0f, want 1000", got)
	}
}
