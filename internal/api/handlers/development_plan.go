package handlers

import (
	"net/http"

	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DevelopmentPlanHandler handles HTTP requests for development plans
type DevelopmentPlanHandler struct {
	service service.DevelopmentPlanServiceInterface
}

// NewDevelopmentPlanHandler creates a new development plan handler
func NewDevelopmentPlanHandler(service service.DevelopmentPlanServiceInterface) *DevelopmentPlanHandler {
	return &DevelopmentPlanHandler{service: service}
}

// CreatePlan handles POST /api/v1/development-plans
// @Summary Create a development plan
// @Tags development-plans
// @Accept json
// @Produce json
// @Param plan body service.CreateDevelopmentPlanRequest true "Plan data"
// @Success 201 {object} models.DevelopmentPlan "Successfully created plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User or competency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /development-plans [post]
func (h *DevelopmentPlanHandler) CreatePlan(c *gin.Context) {
	var req service.CreateDevelopmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to create development plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlans handles GET /api/v1/users/:id/development-plans
// @Summary List a user's development plans
// @Tags development-plans
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} models.DevelopmentPlan "Successfully retrieved plans"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/{id}/development-plans [get]
func (h *DevelopmentPlanHandler) ListPlans(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plans, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err, "Failed to list development plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /api/v1/development-plans/:id
// @Summary Get development plan by ID
// @Tags development-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 200 {object} models.DevelopmentPlan "Successfully retrieved plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /development-plans/{id} [get]
func (h *DevelopmentPlanHandler) GetPlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get development plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles PUT /api/v1/development-plans/:id
// @Summary Update a development plan
// @Description Setting status to completed pins progress to 100
// @Tags development-plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Param plan body service.UpdateDevelopmentPlanRequest true "Plan data"
// @Success 200 {object} models.DevelopmentPlan "Successfully updated plan"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /development-plans/{id} [put]
func (h *DevelopmentPlanHandler) UpdatePlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDevelopmentPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	plan, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update development plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/v1/development-plans/:id
// @Summary Delete a development plan
// @Tags development-plans
// @Produce json
// @Param id path string true "Plan ID (UUID)"
// @Success 204 "Successfully deleted plan"
// @Failure 400 {object} map[string]interface{} "Invalid plan ID"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /development-plans/{id} [delete]
func (h *DevelopmentPlanHandler) DeletePlan(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete development plan")
		return
	}

	c.Status(http.StatusNoContent)
}
