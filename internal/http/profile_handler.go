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
	"fitplan/internal/repository"
	"fitplan/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfil y asignación.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	resolver service.PersonalizationEngine
}

// NewProfileHandler crea una instancia de ProfileHandler.
func NewProfileHandler(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
		resolver: service.PersonalizationEngine{},
	}
}

// CreateUser maneja POST /users.
func (h *ProfileHandler) CreateUser(c *gin.Context) {
	var req struct {
		WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
		HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
		WorkType string  `json:"work_type" binding:"required,oneof=sedentary moderate active"`
		Goal     string  `json:"goal" binding:"required,oneof=lose_weight maintain build_muscle"`
		Gender   string  `json:"gender" binding:"omitempty,oneof=female male neutral"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	assignment := h.resolver.Resolve(req.WeightKg, domain.WorkType(req.WorkType))

	gender := domain.GenderPresentation(req.Gender)
	if gender == "" {
		gender = domain.GenderNeutral
	}

	now := time.Now().UTC()
	attrs := domain.UserAttributes{
		ID:          uuid.NewString(),
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		WorkType:    domain.WorkType(req.WorkType),
		Goal:        domain.Goal(req.Goal),
		FitnessTier: assignment.WorkoutDifficulty,
		Gender:      gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.profiles.Create(c.Request.Context(), attrs); err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": attrs, "assignment": assignment})
}

// UpdateAttributes maneja PUT /users/:id/attributes. Cambiar peso o tipo de
// trabajo recalcula la asignación; la versión del perfil invalida la caché.
func (h *ProfileHandler) UpdateAttributes(c *gin.Context) {
	var req struct {
		WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
		WorkType string  `json:"work_type" binding:"required,oneof=sedentary moderate active"`
		Goal     string  `json:"goal" binding:"omitempty,oneof=lose_weight maintain build_muscle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update attributes request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	attrs, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("load user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}

	attrs.WeightKg = req.WeightKg
	attrs.WorkType = domain.WorkType(req.WorkType)
	if req.Goal != "" {
		attrs.Goal = domain.Goal(req.Goal)
	}
	attrs.UpdatedAt = time.Now().UTC()

	if err := h.profiles.UpdateAttributes(c.Request.Context(), attrs); err != nil {
		h.logger.Error("update attributes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update attributes"})
		return
	}

	assignment := h.resolver.Resolve(attrs.WeightKg, attrs.WorkType)
	c.JSON(http.StatusOK, gin.H{"user": attrs, "assignment": assignment})
}

// GetAssignment maneja GET /users/:id/assignment.
func (h *ProfileHandler) GetAssignment(c *gin.Context) {
	attrs, err := h.profiles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("load user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": h.resolver.Resolve(attrs.WeightKg, attrs.WorkType)})
}
