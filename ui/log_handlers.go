package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"painreliefmap/domain/core"
	"painreliefmap/internal/testkit"
	"painreliefmap/models"
)

// handleSaveLog upserts one daily log entry for the acting user
func (s *Server) handleSaveLog(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var entry models.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	entry.UserID = uid

	if err := s.c.LogService.SaveLog(c.Request.Context(), &entry); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true, "log_date": entry.LogDate.Format(core.DayLayout)})
}

// handleListLogs returns the user's logs, optionally windowed by from/to
// query dates (YYYY-MM-DD).
func (s *Server) handleListLogs(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}

	entries, err := s.c.LogRepo.GetLogs(c.Request.Context(), uid, from, to)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries, "count": len(entries)})
}

func (s *Server) handleDeleteLog(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	day, err := core.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.c.LogService.DeleteLog(c.Request.Context(), uid, day.Time()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (s *Server) handleDeleteAllLogs(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	n, err := s.c.LogService.DeleteAllLogs(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// handleSeedDemo replaces the user's history with the generated demo
// dataset, for trying out the dashboard without weeks of logging.
func (s *Server) handleSeedDemo(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	ctx := c.Request.Context()

	if _, err := s.c.LogService.DeleteAllLogs(ctx, uid); err != nil {
		abortWithError(c, err)
		return
	}

	demo := testkit.GenerateDemoSeries(testkit.DefaultGeneratorConfig())
	saved := 0
	for _, rec := range demo {
		entry := models.FromRecord(uid, rec)
		if err := s.c.LogService.SaveLog(ctx, &entry); err != nil {
			abortWithError(c, err)
			return
		}
		saved++
	}

	s.logger.Info("Seeded %d demo log entries for user %s", saved, uid)
	c.JSON(http.StatusOK, gin.H{"seeded": saved, "therapy": testkit.DemoTherapy})
}

// queryDate parses an optional YYYY-MM-DD query parameter. Returns a zero
// time when absent; writes the error response itself on bad input.
func queryDate(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, true
	}
	day, err := core.ParseDay(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, false
	}
	return day.Time(), true
}
