package handlers

import (
	"errors"
	"net/http"

	"github.com/AarazooSingh1506/autism-detction-system/internal/assessment"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"
	"github.com/AarazooSingh1506/autism-detction-system/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssessmentHandler struct {
	log           *zap.Logger
	questionnaire *models.Questionnaire
	flow          *assessment.Flow
}

func NewAssessmentHandler(log *zap.Logger, questionnaire *models.Questionnaire, flow *assessment.Flow) *AssessmentHandler {
	return &AssessmentHandler{log: log, questionnaire: questionnaire, flow: flow}
}

// Questions returns the behavioral questionnaire for the client to render.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.questionnaire)
}

// SubmitAnswers validates and stages a questionnaire submission in the
// session. This is the first of the two steps of an assessment flow.
func (h *AssessmentHandler) SubmitAnswers(c *gin.Context) {
	var answers models.AnswerSet
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed answer set"})
		return
	}

	if err := assessment.StageAnswers(sessions.Default(c), answers); err != nil {
		var vErr *assessment.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "field": vErr.Field})
			return
		}
		h.log.Error("Failed to stage answers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stage answers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "staged", "next": "/api/assessment/score"})
}

// Score runs the second step: simulated gaze capture, classification and
// persistence of the completed assessment.
func (h *AssessmentHandler) Score(c *gin.Context) {
	user := currentUser(c)

	result, err := h.flow.Run(c.Request.Context(), user.ID, sessions.Default(c))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AssessmentHandler) respondFlowError(c *gin.Context, err error) {
	var vErr *assessment.ValidationError
	var wErr *repository.StoreWriteError

	switch {
	case errors.Is(err, assessment.ErrNoStagedData):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "no questionnaire answers staged",
			"redirect": "/api/assessment/answers",
		})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.As(err, &wErr):
		h.log.Error("Failed to persist assessment", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save assessment, please retry"})
	default:
		h.log.Error("Assessment flow failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scoring failed"})
	}
}

// currentUser returns the user loaded by the auth middleware. Routes
// behind AuthRequired always have one.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet("user").(*models.User)
}
