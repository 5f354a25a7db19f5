package analysis

import (
	"math"
	"testing"

	"painreliefmap/domain/effect"
)

var (
	painBefore = []float64{8, 8, 7}
	painAfter  = []float64{4, 3, 4, 3, 4, 3, 4, 3, 3, 3}
)

func TestEstimateCleanResponder(t *testing.T) {
	est := Estimate(painBefore, painAfter, effect.DefaultOptions())

	if math.Abs(est.MeanBefore-7.6667) > 0.001 {
		t.Errorf("MeanBefore = %.4f, want 7.6667", est.MeanBefore)
	}
	if math.Abs(est.MeanAfter-3.4) > 0.001 {
		t.Errorf("MeanAfter = %.4f, want 3.4", est.MeanAfter)
	}
	if math.Abs(est.AbsoluteEffect-(-4.2667)) > 0.001 {
		t.Errorf("AbsoluteEffect = %.4f, want -4.2667", est.AbsoluteEffect)
	}
	if est.PercentEffect == nil {
		t.Fatal("Expected percent effect")
	}
	if math.Abs(*est.PercentEffect-(-55.652)) > 0.01 {
		t.Errorf("PercentEffect = %.3f, want -55.652", *est.PercentEffect)
	}

	if est.DegenerateVariance {
		t.Fatal("Unexpected degenerate variance flag")
	}
	if est.TStatistic == nil || est.PValue == nil || est.CohensD == nil {
		t.Fatal("Expected full statistics")
	}
	if *est.TStatistic >= 0 {
		t.Errorf("Expected negative t for a pain drop, got %.3f", *est.TStatistic)
	}
	if *est.PValue >= 0.05 {
		t.Errorf("Expected p < 0.05, got %.4f", *est.PValue)
	}
	if *est.CohensD >= 0 {
		t.Errorf("Expected negative Cohen's d, got %.3f", *est.CohensD)
	}
	if est.Magnitude != effect.MagnitudeLarge {
		t.Errorf("Magnitude = %s, want Large", est.Magnitude)
	}
}

func TestEstimateSignSymmetry(t *testing.T) {
	fwd := Estimate(painBefore, painAfter, effect.DefaultOptions())
	rev := Estimate(painAfter, painBefore, effect.DefaultOptions())

	if math.Abs(fwd.AbsoluteEffect+rev.AbsoluteEffect) > 1e-9 {
		t.Errorf("Effect signs not symmetric: %.4f vs %.4f", fwd.AbsoluteEffect, rev.AbsoluteEffect)
	}
	if math.Abs(*fwd.CohensD+*rev.CohensD) > 1e-9 {
		t.Errorf("Cohen's d not sign-symmetric: %.4f vs %.4f", *fwd.CohensD, *rev.CohensD)
	}
	if math.Abs(*fwd.PValue-*rev.PValue) > 1e-9 {
		t.Errorf("p-value should be direction-invariant: %.6f vs %.6f", *fwd.PValue, *rev.PValue)
	}
}

func TestEstimateDegenerateVariance(t *testing.T) {
	t.Run("constant before window", func(t *testing.T) {
		est := Estimate([]float64{5, 5, 5}, painAfter, effect.DefaultOptions())
		if !est.DegenerateVariance {
			t.Fatal("Expected degenerate variance flag")
		}
		if est.TStatistic != nil || est.PValue != nil || est.CohensD != nil {
			t.Error("Expected nil statistics for degenerate variance")
		}
		// Means are still honest
		if est.MeanBefore != 5 {
			t.Errorf("MeanBefore = %.2f, want 5", est.MeanBefore)
		}
	})

	t.Run("constant after window", func(t *testing.T) {
		est := Estimate(painBefore, []float64{3, 3, 3, 3, 3, 3, 3, 3, 3, 3}, effect.DefaultOptions())
		if !est.DegenerateVariance {
			t.Fatal("Expected degenerate variance flag")
		}
	})
}

func TestEstimatePercentGuard(t *testing.T) {
	est := Estimate([]float64{0, 0, 0, 1, -1}, []float64{2, 3, 2}, effect.DefaultOptions())
	if est.MeanBefore != 0 {
		t.Fatalf("MeanBefore = %.2f, want 0", est.MeanBefore)
	}
	if est.PercentEffect != nil {
		t.Error("Expected nil percent effect for zero before mean")
	}
}

func TestMagnitudeLabel(t *testing.T) {
	thresholds := [3]float64{0.2, 0.5, 0.8}
	tests := []struct {
		d    float64
		want effect.MagnitudeLabel
	}{
		{0, effect.MagnitudeNegligible},
		{0.19, effect.MagnitudeNegligible},
		{0.2, effect.MagnitudeSmall},
		{-0.4, effect.MagnitudeSmall},
		{0.5, effect.MagnitudeMedium},
		{-0.79, effect.MagnitudeMedium},
		{0.8, effect.MagnitudeLarge},
		{-3.2, effect.MagnitudeLarge},
	}
	for _, tc := range tests {
		if got := MagnitudeLabel(tc.d, thresholds); got != tc.want {
			t.Errorf("MagnitudeLabel(%.2f) = %s, want %s", tc.d, got, tc.want)
		}
	}
}
