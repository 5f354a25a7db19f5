package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"painreliefmap/domain/series"
	"painreliefmap/internal/insights"
	"painreliefmap/models"
)

// handleDashboard returns the full analytics payload: per-therapy effects on
// the target metric, metric correlations, and generated insights.
func (s *Server) handleDashboard(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	metric, ok := queryMetric(c)
	if !ok {
		return
	}

	report, err := s.c.AnalysisService.BuildDashboard(c.Request.Context(), uid, metric)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// handleTherapyEffect analyzes one named therapy against the target metric
func (s *Server) handleTherapyEffect(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	metric, ok := queryMetric(c)
	if !ok {
		return
	}
	therapy := series.TherapyName(c.Param("therapy"))

	result, err := s.c.AnalysisService.AnalyzeTherapy(c.Request.Context(), uid, metric, therapy)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleCorrelations(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	entries, err := s.c.LogRepo.GetLogs(c.Request.Context(), uid, time.Time{}, time.Time{})
	if err != nil {
		abortWithError(c, err)
		return
	}

	corrs := s.c.Analyzer.Correlations(models.ToSeries(entries), nil)
	c.JSON(http.StatusOK, gin.H{"correlations": corrs})
}

func (s *Server) handleInsights(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	entries, err := s.c.LogRepo.GetLogs(c.Request.Context(), uid, time.Time{}, time.Time{})
	if err != nil {
		abortWithError(c, err)
		return
	}

	list := insights.Generate(models.ToSeries(entries))
	c.JSON(http.StatusOK, gin.H{"insights": list, "count": len(list)})
}

// queryMetric parses the optional metric query parameter, defaulting to pain.
// Writes the error response itself on unknown metrics.
func queryMetric(c *gin.Context) (series.Metric, bool) {
	raw := c.Query("metric")
	if raw == "" {
		return series.MetricPain, true
	}
	metric, err := series.ParseMetric(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown metric: " + raw})
		return "", false
	}
	return metric, true
}
