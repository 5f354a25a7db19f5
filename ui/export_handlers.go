package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"painreliefmap/adapters/export"
	"painreliefmap/domain/effect"
	"painreliefmap/domain/series"
	"painreliefmap/models"
)

// handleExport streams the user's full history and therapy effect results as
// an xlsx workbook.
func (s *Server) handleExport(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	ctx := c.Request.Context()

	entries, err := s.c.LogRepo.GetLogs(ctx, uid, time.Time{}, time.Time{})
	if err != nil {
		abortWithError(c, err)
		return
	}

	snapshot := models.ToSeries(entries)
	var results []effect.Result
	for _, therapy := range snapshot.TherapiesStarted() {
		result, err := s.c.Analyzer.AnalyzeTherapy(snapshot, series.MetricPain, therapy)
		if err != nil {
			abortWithError(c, err)
			return
		}
		results = append(results, result)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="pain-relief-map.xlsx"`)
	if err := export.WriteWorkbook(c.Writer, entries, results); err != nil {
		s.logger.Error("Workbook export failed: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
