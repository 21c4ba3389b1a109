package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecognitionHandler handles HTTP requests for peer recognitions
type RecognitionHandler struct {
	service service.RecognitionServiceInterface
}

// NewRecognitionHandler creates a new recognition handler
func NewRecognitionHandler(service service.RecognitionServiceInterface) *RecognitionHandler {
	return &RecognitionHandler{service: service}
}

// CreateRecognition handles POST /api/v1/recognitions
// @Summary Send a recognition
// @Description Self-recognition is rejected
// @Tags recognitions
// @Accept json
// @Produce json
// @Param recognition body service.CreateRecognitionRequest true "Recognition data"
// @Success 201 {object} models.Recognition "Successfully sent recognition"
// @Failure 400 {object} map[string]interface{} "Invalid request body or self-recognition"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recognitions [post]
func (h *RecognitionHandler) CreateRecognition(c *gin.Context) {
	var req service.CreateRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	recognition, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSelfRecognition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to send recognition")
		return
	}

	c.JSON(http.StatusCreated, recognition)
}

// ListRecognitions handles GET /api/v1/recognitions
// @Summary List the recognition feed
// @Description Returns public recognitions newest first
// @Tags recognitions
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.RecognitionListResponse "Successfully retrieved recognitions"
// @Failure 400 {object} map[string]interface{} "Invalid pagination"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recognitions [get]
func (h *RecognitionHandler) ListRecognitions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.service.List(c.Request.Context(), false, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to list recognitions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLeaderboard handles GET /api/v1/recognitions/leaderboard
// @Summary Top recipients of public recognitions
// @Tags recognitions
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {array} service.LeaderboardEntry "Successfully retrieved leaderboard"
// @Failure 400 {object} map[string]interface{} "Invalid limit"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recognitions/leaderboard [get]
func (h *RecognitionHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.service.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to get leaderboard")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetRecognition handles GET /api/v1/recognitions/:id
// @Summary Get recognition by ID
// @Tags recognitions
// @Produce json
// @Param id path string true "Recognition ID (UUID)"
// @Success 200 {object} models.Recognition "Successfully retrieved recognition"
// @Failure 400 {object} map[string]interface{} "Invalid recognition ID"
// @Failure 404 {object} map[string]interface{} "Recognition not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recognitions/{id} [get]
func (h *RecognitionHandler) GetRecognition(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	recognition, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get recognition")
		return
	}

	c.JSON(http.StatusOK, recognition)
}

// DeleteRecognition handles DELETE /api/v1/recognitions/:id
// @Summary Delete a recognition
// @Tags recognitions
// @Produce json
// @Param id path string true "Recognition ID (UUID)"
// @Success 204 "Successfully deleted recognition"
// @Failure 400 {object} map[string]interface{} "Invalid recognition ID"
// @Failure 404 {object} map[string]interface{} "Recognition not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /recognitions/{id} [delete]
func (h *RecognitionHandler) DeleteRecognition(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete recognition")
		return
	}

	c.Status(http.StatusNoContent)
}
