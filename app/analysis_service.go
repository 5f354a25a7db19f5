package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
	"painreliefmap/internal/insights"
	"painreliefmap/models"
	"painreliefmap/ports"
)

// maxConcurrentAnalyses bounds the per-therapy fan-out. Analyses are cheap,
// so this mostly guards pathological histories with dozens of therapies.
const maxConcurrentAnalyses = 4

// DashboardReport is the one payload the analytics tab renders: per-therapy
// effect results for the target metric, cross-metric correlations, and the
// generated insight list.
type DashboardReport struct {
	Metric       series.Metric                `json:"metric_name"`
	LogCount     int                          `json:"log_count"`
	Effects      []effect.Result              `json:"effects"`
	Correlations []analysis.MetricCorrelation `json:"correlations"`
	Insights     []insights.Insight           `json:"insights"`
	GeneratedAt  time.Time                    `json:"generated_at"`
}

// AnalysisService loads a subject's history and runs the effect engine over
// every therapy the subject has marked started. The service is the only
// place storage and engine meet.
type AnalysisService struct {
	logs     ports.LogRepository
	analyzer *analysis.Analyzer
}

// NewAnalysisService creates the analysis service
func NewAnalysisService(logs ports.LogRepository, analyzer *analysis.Analyzer) *AnalysisService {
	return &AnalysisService{logs: logs, analyzer: analyzer}
}

// Analyzer exposes the underlying engine for callers that already hold a
// series snapshot
func (s *AnalysisService) Analyzer() *analysis.Analyzer {
	return s.analyzer
}

// BuildDashboard assembles the dashboard payload for one subject and target
// metric. Therapies are analyzed concurrently; results keep the series'
// first-marked order regardless of completion order.
func (s *AnalysisService) BuildDashboard(ctx context.Context, userID uuid.UUID, metric series.Metric) (*DashboardReport, error) {
	entries, err := s.logs.GetLogs(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	snapshot := models.ToSeries(entries)
	therapies := snapshot.TherapiesStarted()

	results := make([]effect.Result, len(therapies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)
	for i, therapy := range therapies {
		i, therapy := i, therapy
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.analyzer.AnalyzeTherapy(snapshot, metric, therapy)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardReport{
		Metric:       metric,
		LogCount:     snapshot.Len(),
		Effects:      results,
		Correlations: s.analyzer.Correlations(snapshot, nil),
		Insights:     insights.Generate(snapshot),
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// AnalyzeTherapy runs one (therapy, metric) analysis against the subject's
// stored history
func (s *AnalysisService) AnalyzeTherapy(ctx context.Context, userID uuid.UUID, metric series.Metric, therapy series.TherapyName) (effect.Result, error) {
	entries, err := s.logs.GetLogs(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return effect.Result{}, err
	}
	return s.analyzer.AnalyzeTherapy(models.ToSeries(entries), metric, therapy)
}
