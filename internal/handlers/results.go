package handlers

import (
	"net/http"

	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

// Latest returns the current user's most recent assessment with the gaze
// blob parsed out for the client.
func (h *ResultsHandler) Latest(c *gin.Context) {
	user := currentUser(c)

	record, err := repository.LatestAssessmentFor(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to load latest assessment", zap.Error(err), zap.Int("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "no assessments yet",
			"redirect": "/api/assessment/answers",
		})
		return
	}

	signal, err := record.GazeSignal()
	if err != nil {
		h.log.Error("Stored gaze blob does not parse", zap.Error(err), zap.Int("record_id", record.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment":   record,
		"gaze_pattern": signal,
	})
}

// History returns all of the current user's assessments, most recent first.
func (h *ResultsHandler) History(c *gin.Context) {
	user := currentUser(c)

	records, err := repository.ListAssessmentsFor(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Error("Failed to list assessments", zap.Error(err), zap.Int("user_id", user.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load results"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": records})
}
