package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/internal/analysis"
	"painreliefmap/internal/testkit"
	"painreliefmap/models"
)

func seedDemo(t *testing.T, repo *fakeLogRepository, userID uuid.UUID) {
	t.Helper()
	for _, rec := range testkit.GenerateDemoSeries(testkit.DefaultGeneratorConfig()) {
		entry := models.FromRecord(userID, rec)
		require.NoError(t, repo.UpsertLog(context.Background(), &entry))
	}
}

func newAnalysisFixture(t *testing.T) (*AnalysisService, *fakeLogRepository, uuid.UUID) {
	t.Helper()
	repo := newFakeLogRepository()
	opts := effect.DefaultOptions()
	opts.Seed = 42
	svc := NewAnalysisService(repo, analysis.NewAnalyzer(opts))
	return svc, repo, uuid.New()
}

func TestBuildDashboard(t *testing.T) {
	svc, repo, userID := newAnalysisFixture(t)
	seedDemo(t, repo, userID)

	report, err := svc.BuildDashboard(context.Background(), userID, series.MetricPain)
	require.NoError(t, err)

	assert.Equal(t, series.MetricPain, report.Metric)
	assert.Equal(t, 30, report.LogCount)
	require.Len(t, report.Effects, 1)

	eff := report.Effects[0]
	assert.Equal(t, testkit.DemoTherapy, eff.Therapy)
	assert.Equal(t, effect.StatusComputed, eff.Status)
	require.NotNil(t, eff.AbsoluteEffect)
	assert.Negative(t, *eff.AbsoluteEffect, "demo data shows pain dropping")

	assert.Len(t, report.Correlations, 10)
	assert.NotEmpty(t, report.Insights)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestBuildDashboardEmptyHistory(t *testing.T) {
	svc, _, userID := newAnalysisFixture(t)

	report, err := svc.BuildDashboard(context.Background(), userID, series.MetricPain)
	require.NoError(t, err)

	assert.Zero(t, report.LogCount)
	assert.Empty(t, report.Effects, "no therapies marked, no effects")
	assert.Empty(t, report.Insights)
}

func TestBuildDashboardDeterministic(t *testing.T) {
	svc, repo, userID := newAnalysisFixture(t)
	seedDemo(t, repo, userID)

	a, err := svc.BuildDashboard(context.Background(), userID, series.MetricPain)
	require.NoError(t, err)
	b, err := svc.BuildDashboard(context.Background(), userID, series.MetricPain)
	require.NoError(t, err)

	assert.Equal(t, a.Effects, b.Effects, "seeded analyzer must be repeatable")
	assert.Equal(t, a.Correlations, b.Correlations)
}

func TestAnalyzeTherapyService(t *testing.T) {
	svc, repo, userID := newAnalysisFixture(t)
	seedDemo(t, repo, userID)

	result, err := svc.AnalyzeTherapy(context.Background(), userID, series.MetricPain, testkit.DemoTherapy)
	require.NoError(t, err)
	assert.Equal(t, effect.StatusComputed, result.Status)

	_, err = svc.AnalyzeTherapy(context.Background(), userID, series.MetricPain, "Acupuncture")
	assert.Error(t, err, "unknown therapy is a usage error")
}
