package handlers

import (
	"errors"
	"net/http"

	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyObjectiveHandler handles HTTP requests for company objectives and
// their key results
type CompanyObjectiveHandler struct {
	service service.CompanyObjectiveServiceInterface
}

// NewCompanyObjectiveHandler creates a new company objective handler
func NewCompanyObjectiveHandler(service service.CompanyObjectiveServiceInterface) *CompanyObjectiveHandler {
	return &CompanyObjectiveHandler{service: service}
}

// CreateObjective handles POST /api/v1/objectives
// @Summary Create a new company objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param objective body service.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} models.CompanyObjective "Successfully created objective"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives [post]
func (h *CompanyObjectiveHandler) CreateObjective(c *gin.Context) {
	var req service.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to create objective")
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// ListObjectives handles GET /api/v1/objectives
// @Summary List company objectives
// @Tags objectives
// @Produce json
// @Param active query bool false "Only active objectives"
// @Success 200 {array} models.CompanyObjective "Successfully retrieved objectives"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives [get]
func (h *CompanyObjectiveHandler) ListObjectives(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	objectives, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		handleError(c, err, "Failed to list objectives")
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// GetObjective handles GET /api/v1/objectives/:id
// @Summary Get company objective by ID
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} models.CompanyObjective "Successfully retrieved objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives/{id} [get]
func (h *CompanyObjectiveHandler) GetObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	objective, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// GetObjectiveProgress handles GET /api/v1/objectives/:id/progress
// @Summary Get derived objective progress
// @Description Progress is the mean completion of the objective's key results
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} service.ObjectiveProgressResponse "Successfully retrieved progress"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives/{id}/progress [get]
func (h *CompanyObjectiveHandler) GetObjectiveProgress(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get objective progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// UpdateObjective handles PUT /api/v1/objectives/:id
// @Summary Update a company objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateObjectiveRequest true "Objective data"
// @Success 200 {object} models.CompanyObjective "Successfully updated objective"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives/{id} [put]
func (h *CompanyObjectiveHandler) UpdateObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	objective, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to update objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// DeleteObjective handles DELETE /api/v1/objectives/:id
// @Summary Delete a company objective and its key results
// @Tags objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 204 "Successfully deleted objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives/{id} [delete]
func (h *CompanyObjectiveHandler) DeleteObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete objective")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddKeyResult handles POST /api/v1/objectives/:id/key-results
// @Summary Add a key result to a company objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param key_result body service.KeyResultRequest true "Key result data"
// @Success 201 {object} models.KeyResult "Successfully created key result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /objectives/{id}/key-results [post]
func (h *CompanyObjectiveHandler) AddKeyResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.KeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	kr, err := h.service.AddKeyResult(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to add key result")
		return
	}

	c.JSON(http.StatusCreated, kr)
}

// UpdateKeyResult handles PUT /api/v1/key-results/:id
// @Summary Update a key result
// @Tags objectives
// @Accept json
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Param key_result body service.KeyResultRequest true "Key result data"
// @Success 200 {object} models.KeyResult "Successfully updated key result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /key-results/{id} [put]
func (h *CompanyObjectiveHandler) UpdateKeyResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.KeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	kr, err := h.service.UpdateKeyResult(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update key result")
		return
	}

	c.JSON(http.StatusOK, kr)
}

// DeleteKeyResult handles DELETE /api/v1/key-results/:id
// @Summary Delete a key result
// @Tags objectives
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Success 204 "Successfully deleted key result"
// @Failure 400 {object} map[string]interface{} "Invalid key result ID"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /key-results/{id} [delete]
func (h *CompanyObjectiveHandler) DeleteKeyResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteKeyResult(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete key result")
		return
	}

	c.Status(http.StatusNoContent)
}
