// Package testkit provides deterministic synthetic series for tests, the CLI
// demo command, and local development without a database.
package testkit

import (
	"math"
	"math/rand"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
)

// DemoTherapy is the therapy marked in generated demo data
const DemoTherapy = series.TherapyName("Yoga")

// GeneratorConfig controls synthetic series shape
type GeneratorConfig struct {
	Days            int
	TherapyStartDay int // zero-based day index on which DemoTherapy starts
	Start           core.Day
	Seed            int64
}

// DefaultGeneratorConfig mirrors the demo dataset: 30 days with the therapy
// started a week in, pain high before and declining after.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Days:            30,
		TherapyStartDay: 7,
		Start:           core.MustDay("2025-06-01"),
		Seed:            42,
	}
}

// GenerateDemoSeries builds a synthetic subject history: pain starts high and
// drops steadily once the therapy begins, sleep and mood trend up, stress
// trends down. Fully deterministic for a fixed config.
func GenerateDemoSeries(cfg GeneratorConfig) series.Series {
	if cfg.Days <= 0 {
		cfg = DefaultGeneratorConfig()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	out := make(series.Series, 0, cfg.Days)
	for day := 0; day < cfg.Days; day++ {
		var pain float64
		if day < cfg.TherapyStartDay {
			pain = clamp(8-float64(day)*0.05+rng.NormFloat64()*0.3, 6, 9)
		} else {
			sinceStart := float64(day - cfg.TherapyStartDay)
			pain = clamp(8-sinceStart*0.25+rng.NormFloat64()*0.3, 3, 7)
		}

		sleep := clamp(5.5+float64(day)*0.05+rng.NormFloat64()*0.2, 5, 9)
		mood := clamp(5+float64(day)*0.08+rng.NormFloat64()*0.3, 4, 9)
		stress := clamp(7-float64(day)*0.06, 0, 10)

		rec := series.Record{
			Date: cfg.Start.AddDays(day),
			Metrics: map[series.Metric]float64{
				series.MetricPain:       round1(pain),
				series.MetricSleepHours: round1(sleep),
				series.MetricMood:       round1(mood),
				series.MetricStress:     round1(stress),
			},
			GoodDay: pain < 5,
		}
		if day == cfg.TherapyStartDay {
			rec.Therapies = []series.TherapyName{DemoTherapy}
		}
		out = append(out, rec)
	}
	return out
}

// SparseSeries builds a series from explicit per-day values of one metric,
// with missing days expressed as math.NaN. therapyDay is the zero-based index
// that marks the therapy start; negative means no therapy marker. Handy for
// table-driven engine tests.
func SparseSeries(start core.Day, metric series.Metric, values []float64, therapy series.TherapyName, therapyDay int) series.Series {
	out := make(series.Series, 0, len(values))
	for i, v := range values {
		rec := series.Record{Date: start.AddDays(i), Metrics: map[series.Metric]float64{}}
		if !math.IsNaN(v) {
			rec.Metrics[metric] = v
		}
		if i == therapyDay && therapy != "" {
			rec.Therapies = []series.TherapyName{therapy}
		}
		out = append(out, rec)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
