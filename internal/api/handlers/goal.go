package handlers

import (
	"errors"
	"net/http"

	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for goals and weekly check-ins
type GoalHandler struct {
	service service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(service service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{service: service}
}

// CreateGoal handles POST /api/v1/goals
// @Summary Create a new goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.CreateGoalRequest true "Goal data"
// @Success 201 {object} service.GoalResponse "Successfully created goal"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Referenced entity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// ListGoals handles GET /api/v1/goals
// @Summary List goals
// @Description Completion is derived from current versus target value, never stored
// @Tags goals
// @Produce json
// @Param user_id query string false "Scope to one user (UUID)"
// @Param status query string false "Filter by derived status" Enums(open, completed)
// @Success 200 {array} service.GoalResponse "Successfully retrieved goals"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := parseUUIDQuery(c, "user_id")
	if !ok {
		return
	}

	status := service.GoalStatus(c.Query("status"))
	if status != "" && status != service.GoalStatusOpen && status != service.GoalStatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: must be open or completed"})
		return
	}

	goals, err := h.service.List(c.Request.Context(), userID, status)
	if err != nil {
		handleError(c, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, goals)
}

// GetGoal handles GET /api/v1/goals/:id
// @Summary Get goal by ID
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} service.GoalResponse "Successfully retrieved goal"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get goal")
		return
	}

	c.JSON(http.StatusOK, goal)
}

// UpdateGoal handles PUT /api/v1/goals/:id
// @Summary Update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param goal body service.UpdateGoalRequest true "Goal data"
// @Success 200 {object} service.GoalResponse "Successfully updated goal"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	goal, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to update goal")
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/:id
// @Summary Delete a goal and its check-ins
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 204 "Successfully deleted goal"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete goal")
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitCheckIn handles POST /api/v1/goals/:id/checkins
// @Summary Submit a weekly check-in
// @Description The check-in is dated to the Sunday of the current week and syncs the goal's value and confidence
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param check_in body service.SubmitCheckInRequest true "Check-in data"
// @Success 201 {object} models.CheckIn "Successfully submitted check-in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals/{id}/checkins [post]
func (h *GoalHandler) SubmitCheckIn(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.SubmitCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	checkIn, err := h.service.SubmitCheckIn(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to submit check-in")
		return
	}

	c.JSON(http.StatusCreated, checkIn)
}

// ListCheckIns handles GET /api/v1/goals/:id/checkins
// @Summary List a goal's check-ins
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {array} models.CheckIn "Successfully retrieved check-ins"
// @Failure 400 {object} map[string]interface{} "Invalid goal ID"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /goals/{id}/checkins [get]
func (h *GoalHandler) ListCheckIns(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	checkIns, err := h.service.ListCheckIns(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to list check-ins")
		return
	}

	c.JSON(http.StatusOK, checkIns)
}
