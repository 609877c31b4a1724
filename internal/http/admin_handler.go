package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitplan/internal/domain"
	"fitplan/internal/repository"
)

// AdminHandler administra overrides de plan y mensajes programados.
type AdminHandler struct {
	logger    *zap.Logger
	overrides repository.OverrideRepository
	messages  repository.ScheduledMessageRepository
}

// NewAdminHandler crea una instancia de AdminHandler.
func NewAdminHandler(
	logger *zap.Logger,
	overrides repository.OverrideRepository,
	messages repository.ScheduledMessageRepository,
) *AdminHandler {
	return &AdminHandler{
		logger:    logger,
		overrides: overrides,
		messages:  messages,
	}
}

// CreateOverride maneja POST /admin/overrides.
func (h *AdminHandler) CreateOverride(c *gin.Context) {
	var req struct {
		UserID  string `json:"user_id" binding:"required"`
		Kind    string `json:"kind" binding:"required,oneof=rest_day fasting_pattern difficulty"`
		Value   string `json:"value"`
		ForDate string `json:"for_date" binding:"omitempty,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create override request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Kind != string(domain.OverrideRestDay) && req.Value == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required for this kind"})
		return
	}

	override := domain.AdminOverride{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Kind:      domain.OverrideKind(req.Kind),
		Value:     req.Value,
		ForDate:   req.ForDate,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.overrides.Create(c.Request.Context(), override); err != nil {
		h.logger.Error("create override failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create override"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"override": override})
}

// ListOverrides maneja GET /admin/overrides?user_id=...
func (h *AdminHandler) ListOverrides(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	overrides, err := h.overrides.ListActive(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list overrides failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list overrides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}

// DeactivateOverride maneja DELETE /admin/overrides/:id.
func (h *AdminHandler) DeactivateOverride(c *gin.Context) {
	if err := h.overrides.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("deactivate override failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not deactivate override"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// CreateMessage maneja POST /admin/messages.
func (h *AdminHandler) CreateMessage(c *gin.Context) {
	var req struct {
		UserID    string `json:"user_id"`
		Body      string `json:"body" binding:"required"`
		DeliverAt string `json:"deliver_at" binding:"required,datetime=15:04"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg := domain.ScheduledMessage{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Body:      req.Body,
		DeliverAt: req.DeliverAt,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.messages.Create(c.Request.Context(), msg); err != nil {
		h.logger.Error("create message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListMessages maneja GET /admin/messages?user_id=...
func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.messages.ListActive(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// DeactivateMessage maneja DELETE /admin/messages/:id.
func (h *AdminHandler) DeactivateMessage(c *gin.Context) {
	if err := h.messages.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("deactivate message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not deactivate message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
