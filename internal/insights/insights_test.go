package insights

import (
	"strings"
	"testing"

	"painreliefmap/domain/core"
	"painreliefmap/domain/series"
	"painreliefmap/internal/testkit"
)

var start = core.MustDay("2025-06-01")

// flatSeries logs one metric at a constant value for n days
func flatSeries(metric series.Metric, value float64, n int) series.Series {
	out := make(series.Series, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, series.Record{
			Date:    start.AddDays(i),
			Metrics: map[series.Metric]float64{metric: value},
		})
	}
	return out
}

func findInsight(list []Insight, kind Kind) (Insight, bool) {
	for _, in := range list {
		if in.Kind == kind {
			return in, true
		}
	}
	return Insight{}, false
}

func TestPainTrendImproving(t *testing.T) {
	// First week around 8, last week around 4
	values := []float64{8, 8, 8, 8, 8, 8, 8, 7, 6, 5, 4, 4, 4, 4, 4, 4, 4}
	s := testkit.SparseSeries(start, series.MetricPain, values, "", -1)

	in, ok := findInsight(Generate(s), KindProgress)
	if !ok {
		t.Fatal("Expected a progress insight")
	}
	if in.Title != "Positive Progress" {
		t.Errorf("Title = %q", in.Title)
	}
	if !strings.Contains(in.Message, "decreased by 4.0 points") {
		t.Errorf("Message = %q", in.Message)
	}
}

func TestPainTrendWorsening(t *testing.T) {
	values := []float64{3, 3, 3, 3, 3, 3, 3, 4, 5, 6, 7, 7, 7, 7, 7, 7, 7}
	s := testkit.SparseSeries(start, series.MetricPain, values, "", -1)

	in, ok := findInsight(Generate(s), KindWarning)
	if !ok {
		t.Fatal("Expected a warning insight")
	}
	if !strings.Contains(in.Message, "increased by 4.0 points") {
		t.Errorf("Message = %q", in.Message)
	}
}

func TestPainTrendStable(t *testing.T) {
	s := flatSeries(series.MetricPain, 5, 14)

	in, ok := findInsight(Generate(s), KindStable)
	if !ok {
		t.Fatal("Expected a stable insight")
	}
	if !strings.Contains(in.Message, "remained relatively stable") {
		t.Errorf("Message = %q", in.Message)
	}
}

func TestPainTrendNeedsFullWindow(t *testing.T) {
	s := testkit.SparseSeries(start, series.MetricPain, []float64{8, 7, 6}, "", -1)
	if _, ok := findInsight(Generate(s), KindStable); ok {
		t.Error("Three days should not produce a trend insight")
	}
}

func TestSleepPainLinkStrong(t *testing.T) {
	// Perfectly inverse sleep and pain over two weeks
	s := make(series.Series, 0, 14)
	for i := 0; i < 14; i++ {
		sleep := 5 + float64(i%5)
		s = append(s, series.Record{
			Date: start.AddDays(i),
			Metrics: map[series.Metric]float64{
				series.MetricSleepHours: sleep,
				series.MetricPain:       10 - sleep,
			},
		})
	}

	in, ok := findInsight(Generate(s), KindLink)
	if !ok {
		t.Fatal("Expected a sleep-pain link insight")
	}
	if !strings.Contains(in.Message, "strong link") {
		t.Errorf("Message = %q, want strong strength", in.Message)
	}
}

func TestSleepPainLinkRequiresOverlap(t *testing.T) {
	s := make(series.Series, 0, 6)
	for i := 0; i < 6; i++ {
		s = append(s, series.Record{
			Date: start.AddDays(i),
			Metrics: map[series.Metric]float64{
				series.MetricSleepHours: float64(5 + i),
				series.MetricPain:       float64(9 - i),
			},
		})
	}

	if _, ok := findInsight(Generate(s), KindLink); ok {
		t.Error("Fewer than 10 paired days should not produce a link insight")
	}
}

func TestMoodSummary(t *testing.T) {
	t.Run("positive mood", func(t *testing.T) {
		s := flatSeries(series.MetricMood, 8, 10)
		in, ok := findInsight(Generate(s), KindMood)
		if !ok {
			t.Fatal("Expected a mood insight")
		}
		if in.Title != "Positive Mood Trend" {
			t.Errorf("Title = %q", in.Title)
		}
		if !strings.Contains(in.Message, "avg: 8.0/10") {
			t.Errorf("Message = %q", in.Message)
		}
	})

	t.Run("low mood", func(t *testing.T) {
		s := flatSeries(series.MetricMood, 4, 10)
		in, ok := findInsight(Generate(s), KindMood)
		if !ok {
			t.Fatal("Expected a mood insight")
		}
		if in.Title != "Mood Pattern Noted" {
			t.Errorf("Title = %q", in.Title)
		}
	})

	t.Run("middling mood stays quiet", func(t *testing.T) {
		s := flatSeries(series.MetricMood, 6, 10)
		if _, ok := findInsight(Generate(s), KindMood); ok {
			t.Error("Mood between the bounds should not produce an insight")
		}
	})
}

func TestGenerateEmptySeries(t *testing.T) {
	if got := Generate(nil); len(got) != 0 {
		t.Errorf("Expected no insights for an empty series, got %d", len(got))
	}
}
