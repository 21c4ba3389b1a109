package handlers

import (
	"net/http"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LearningResourceHandler handles HTTP requests for the learning catalog
type LearningResourceHandler struct {
	service service.LearningResourceServiceInterface
}

// NewLearningResourceHandler creates a new learning resource handler
func NewLearningResourceHandler(service service.LearningResourceServiceInterface) *LearningResourceHandler {
	return &LearningResourceHandler{service: service}
}

// CreateResource handles POST /api/v1/learning-resources
// @Summary Create a learning resource
// @Tags learning-resources
// @Accept json
// @Produce json
// @Param resource body service.LearningResourceRequest true "Resource data"
// @Success 201 {object} models.LearningResource "Successfully created resource"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /learning-resources [post]
func (h *LearningResourceHandler) CreateResource(c *gin.Context) {
	var req service.LearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resource, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to create learning resource")
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// ListResources handles GET /api/v1/learning-resources
// @Summary List learning resources
// @Tags learning-resources
// @Produce json
// @Param type query string false "Filter by type" Enums(course, video, article, book, workshop)
// @Param competency_id query string false "Filter by competency (UUID)"
// @Success 200 {array} models.LearningResource "Successfully retrieved resources"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /learning-resources [get]
func (h *LearningResourceHandler) ListResources(c *gin.Context) {
	competencyID, ok := parseUUIDQuery(c, "competency_id")
	if !ok {
		return
	}
	resourceType := models.ResourceType(c.Query("type"))

	resources, err := h.service.List(c.Request.Context(), resourceType, competencyID)
	if err != nil {
		handleError(c, err, "Failed to list learning resources")
		return
	}

	c.JSON(http.StatusOK, resources)
}

// GetResource handles GET /api/v1/learning-resources/:id
// @Summary Get learning resource by ID
// @Tags learning-resources
// @Produce json
// @Param id path string true "Resource ID (UUID)"
// @Success 200 {object} models.LearningResource "Successfully retrieved resource"
// @Failure 400 {object} map[string]interface{} "Invalid resource ID"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /learning-resources/{id} [get]
func (h *LearningResourceHandler) GetResource(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	resource, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get learning resource")
		return
	}

	c.JSON(http.StatusOK, resource)
}

// UpdateResource handles PUT /api/v1/learning-resources/:id
// @Summary Update a learning resource
// @Tags learning-resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID (UUID)"
// @Param resource body service.LearningResourceRequest true "Resource data"
// @Success 200 {object} models.LearningResource "Successfully updated resource"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /learning-resources/{id} [put]
func (h *LearningResourceHandler) UpdateResource(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.LearningResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resource, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update learning resource")
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeleteResource handles DELETE /api/v1/learning-resources/:id
// @Summary Delete a learning resource
// @Tags learning-resources
// @Produce json
// @Param id path string true "Resource ID (UUID)"
// @Success 204 "Successfully deleted resource"
// @Failure 400 {object} map[string]interface{} "Invalid resource ID"
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /learning-resources/{id} [delete]
func (h *LearningResourceHandler) DeleteResource(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete learning resource")
		return
	}

	c.Status(http.StatusNoContent)
}
