package testkit

import (
	"math"
	"reflect"
	"testing"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
)

func TestGenerateDemoSeriesShape(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	s := GenerateDemoSeries(cfg)

	if s.Len() != 30 {
		t.Fatalf("Len = %d, want 30", s.Len())
	}

	start, err := s.InterventionDate(DemoTherapy)
	if err != nil {
		t.Fatalf("Demo therapy not marked: %v", err)
	}
	if !start.Equal(cfg.Start.AddDays(cfg.TherapyStartDay)) {
		t.Errorf("Therapy starts %s, want day %d", start, cfg.TherapyStartDay)
	}

	// Every day logs pain within range
	_, pain := s.MetricObservations(series.MetricPain)
	if len(pain) != 30 {
		t.Fatalf("Expected pain logged daily, got %d", len(pain))
	}
	for i, v := range pain {
		if v < 0 || v > 10 {
			t.Errorf("Day %d pain %.1f out of range", i, v)
		}
	}
}

func TestGenerateDemoSeriesDeterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()

	a := GenerateDemoSeries(cfg)
	b := GenerateDemoSeries(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("Same config produced different series")
	}

	cfg.Seed = 99
	c := GenerateDemoSeries(cfg)
	if reflect.DeepEqual(a, c) {
		t.Error("Different seeds produced an identical series")
	}
}

func TestGenerateDemoSeriesPainDrops(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	s := GenerateDemoSeries(cfg)
	_, pain := s.MetricObservations(series.MetricPain)

	var beforeSum, afterSum float64
	for i, v := range pain {
		if i < cfg.TherapyStartDay {
			beforeSum += v
		} else {
			afterSum += v
		}
	}
	beforeMean := beforeSum / float64(cfg.TherapyStartDay)
	afterMean := afterSum / float64(len(pain)-cfg.TherapyStartDay)

	if afterMean >= beforeMean-1 {
		t.Errorf("Expected a clear pain drop, got %.2f before vs %.2f after", beforeMean, afterMean)
	}
}

func TestSparseSeries(t *testing.T) {
	start := core.MustDay("2025-06-01")
	nan := math.NaN()
	s := SparseSeries(start, series.MetricPain, []float64{8, nan, 6}, "Yoga", 2)

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if _, ok := s[1].Metric(series.MetricPain); ok {
		t.Error("NaN day should have no pain value")
	}
	if !s[2].StartsTherapy("Yoga") {
		t.Error("Therapy marker missing on day 2")
	}
	if s[0].StartsTherapy("Yoga") {
		t.Error("Therapy marker on the wrong day")
	}
}
