package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitplan/internal/domain"
	"fitplan/internal/service"
)

// PlanHandler mantiene dependencias para endpoints del motor de planes.
type PlanHandler struct {
	logger  *zap.Logger
	plans   *service.PlanService
	fasting service.FastingCalculator
}

// NewPlanHandler crea una instancia de PlanHandler.
func NewPlanHandler(logger *zap.Logger, plans *service.PlanService) *PlanHandler {
	return &PlanHandler{
		logger:  logger,
		plans:   plans,
		fasting: service.FastingCalculator{},
	}
}

// DailyPlan maneja POST /plan/daily.
func (h *PlanHandler) DailyPlan(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
		Date   string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid daily plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	plan, err := h.plans.GenerateDailyPlan(c.Request.Context(), req.UserID, date)
	if err != nil {
		h.logger.Error("generate daily plan failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// FastingStatus maneja GET /fasting/status. Es una proyección sin estado:
// el cliente que quiera cuenta regresiva debe consultar en cada tick.
func (h *PlanHandler) FastingStatus(c *gin.Context) {
	pattern := domain.FastingPattern(c.Query("pattern"))
	if pattern == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pattern is required"})
		return
	}

	at := time.Now().UTC()
	if q := c.Query("at"); q != "" {
		parsed, err := time.Parse("15:04", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid at, expected HH:MM"})
			return
		}
		at = parsed
	}

	window := h.fasting.WindowFor(pattern)
	c.JSON(http.StatusOK, gin.H{
		"window": window,
		"status": h.fasting.StatusAt(window, at),
	})
}

// ProgressionPreview maneja POST /progression/preview.
func (h *PlanHandler) ProgressionPreview(c *gin.Context) {
	var req struct {
		UserID  string                    `json:"user_id" binding:"required"`
		Factors domain.ProgressionFactors `json:"factors" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid progression preview request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	adj, err := h.plans.PreviewAdjustments(c.Request.Context(), req.UserID, req.Factors)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("progression preview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute adjustments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"adjustments": adj})
}

// RecordProgress maneja POST /progress.
func (h *PlanHandler) RecordProgress(c *gin.Context) {
	var req struct {
		UserID             string `json:"user_id" binding:"required"`
		Date               string `json:"date" binding:"required,datetime=2006-01-02"`
		CompletedExercises int    `json:"completed_exercises" binding:"min=0"`
		TotalExercises     int    `json:"total_exercises" binding:"min=0"`
		WorkoutCompleted   bool   `json:"workout_completed"`
		FastingCompliant   bool   `json:"fasting_compliant"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid record progress request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	snap := domain.ProgressSnapshot{
		ID:                 uuid.NewString(),
		UserID:             req.UserID,
		Date:               req.Date,
		CompletedExercises: req.CompletedExercises,
		TotalExercises:     req.TotalExercises,
		WorkoutCompleted:   req.WorkoutCompleted,
		FastingCompliant:   req.FastingCompliant,
		CreatedAt:          time.Now().UTC(),
	}

	if err := h.plans.RecordProgress(c.Request.Context(), snap); err != nil {
		h.logger.Error("record progress failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record progress"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snap})
}
