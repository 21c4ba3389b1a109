package handlers

import (
	"errors"
	"net/http"

	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles HTTP requests for webhook configurations
type WebhookHandler struct {
	service service.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(service service.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// CreateWebhook handles POST /api/v1/webhooks
// @Summary Create a webhook configuration
// @Description Headers must be a JSON object of string values
// @Tags webhooks
// @Accept json
// @Produce json
// @Param webhook body service.WebhookConfigRequest true "Webhook configuration"
// @Success 201 {object} models.WebhookConfig "Successfully created configuration"
// @Failure 400 {object} map[string]interface{} "Invalid request body, event type, or headers"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks [post]
func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	var req service.WebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	config, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEventType) || errors.Is(err, apperrors.ErrInvalidWebhookHeaders) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to create webhook configuration")
		return
	}

	c.JSON(http.StatusCreated, config)
}

// ListWebhooks handles GET /api/v1/webhooks
// @Summary List webhook configurations
// @Tags webhooks
// @Produce json
// @Param event_type query string false "Filter by event type"
// @Success 200 {array} models.WebhookConfig "Successfully retrieved configurations"
// @Failure 400 {object} map[string]interface{} "Invalid event type"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks [get]
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	eventType := models.WebhookEventType(c.Query("event_type"))

	configs, err := h.service.List(c.Request.Context(), eventType)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEventType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to list webhook configurations")
		return
	}

	c.JSON(http.StatusOK, configs)
}

// GetWebhook handles GET /api/v1/webhooks/:id
// @Summary Get webhook configuration by ID
// @Tags webhooks
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} models.WebhookConfig "Successfully retrieved configuration"
// @Failure 400 {object} map[string]interface{} "Invalid configuration ID"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks/{id} [get]
func (h *WebhookHandler) GetWebhook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	config, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get webhook configuration")
		return
	}

	c.JSON(http.StatusOK, config)
}

// UpdateWebhook handles PUT /api/v1/webhooks/:id
// @Summary Update a webhook configuration
// @Tags webhooks
// @Accept json
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Param webhook body service.WebhookConfigRequest true "Webhook configuration"
// @Success 200 {object} models.WebhookConfig "Successfully updated configuration"
// @Failure 400 {object} map[string]interface{} "Invalid request body, event type, or headers"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks/{id} [put]
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.WebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	config, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidEventType) || errors.Is(err, apperrors.ErrInvalidWebhookHeaders) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to update webhook configuration")
		return
	}

	c.JSON(http.StatusOK, config)
}

// ToggleWebhook handles PATCH /api/v1/webhooks/:id/toggle
// @Summary Toggle a webhook configuration's active flag
// @Tags webhooks
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} models.WebhookConfig "Successfully toggled configuration"
// @Failure 400 {object} map[string]interface{} "Invalid configuration ID"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks/{id}/toggle [patch]
func (h *WebhookHandler) ToggleWebhook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	config, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to toggle webhook configuration")
		return
	}

	c.JSON(http.StatusOK, config)
}

// TestWebhook handles POST /api/v1/webhooks/:id/test
// @Summary Send a test event
// @Description Delivers a synthetic event using the configuration's retry and timeout settings
// @Tags webhooks
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 200 {object} service.TestResult "Test delivery outcome"
// @Failure 400 {object} map[string]interface{} "Configuration is inactive"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks/{id}/test [post]
func (h *WebhookHandler) TestWebhook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Test(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInactiveWebhook) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to test webhook configuration")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteWebhook handles DELETE /api/v1/webhooks/:id
// @Summary Delete a webhook configuration
// @Tags webhooks
// @Produce json
// @Param id path string true "Configuration ID (UUID)"
// @Success 204 "Successfully deleted configuration"
// @Failure 400 {object} map[string]interface{} "Invalid configuration ID"
// @Failure 404 {object} map[string]interface{} "Configuration not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /webhooks/{id} [delete]
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete webhook configuration")
		return
	}

	c.Status(http.StatusNoContent)
}
