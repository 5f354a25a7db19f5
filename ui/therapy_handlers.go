package ui

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"painreliefmap/domain/core"
	"painreliefmap/models"
)

// handleSaveTherapy registers or updates a named therapy for the acting user
func (s *Server) handleSaveTherapy(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var therapy models.Therapy
	if err := c.ShouldBindJSON(&therapy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	therapy.UserID = uid

	if strings.TrimSpace(therapy.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "therapy_name is required"})
		return
	}
	if therapy.StartDate.IsZero() {
		therapy.StartDate = core.Today().Time()
	}
	therapy.IsActive = therapy.EndDate == nil

	if err := s.c.TherapyRepo.SaveTherapy(c.Request.Context(), &therapy); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true, "therapy": therapy})
}

// handleListTherapies returns the user's active therapies
func (s *Server) handleListTherapies(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	therapies, err := s.c.TherapyRepo.ActiveTherapies(c.Request.Context(), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapies": therapies, "count": len(therapies)})
}

// handleEndTherapy closes a therapy's tracking span. The end date defaults to
// today and can be overridden with an end_date query parameter (YYYY-MM-DD).
func (s *Server) handleEndTherapy(c *gin.Context) {
	uid, err := userID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	name := c.Param("name")
	end := core.Today().Time()
	if raw := c.Query("end_date"); raw != "" {
		day, err := core.ParseDay(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		end = day.Time()
	}

	if err := s.c.TherapyRepo.EndTherapy(c.Request.Context(), uid, name, end); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ended": name, "end_date": end.Format(core.DayLayout)})
}
