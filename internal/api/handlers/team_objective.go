package handlers

import (
	"errors"
	"net/http"

	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamObjectiveHandler handles HTTP requests for team objectives and their
// key results
type TeamObjectiveHandler struct {
	service service.TeamObjectiveServiceInterface
}

// NewTeamObjectiveHandler creates a new team objective handler
func NewTeamObjectiveHandler(service service.TeamObjectiveServiceInterface) *TeamObjectiveHandler {
	return &TeamObjectiveHandler{service: service}
}

// CreateTeamObjective handles POST /api/v1/team-objectives
// @Summary Create a new team objective
// @Tags team-objectives
// @Accept json
// @Produce json
// @Param objective body service.CreateTeamObjectiveRequest true "Objective data"
// @Success 201 {object} models.TeamObjective "Successfully created objective"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives [post]
func (h *TeamObjectiveHandler) CreateTeamObjective(c *gin.Context) {
	var req service.CreateTeamObjectiveRequest
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
		handleError(c, err, "Failed to create team objective")
		return
	}

	c.JSON(http.StatusCreated, objective)
}

// ListTeamObjectives handles GET /api/v1/team-objectives
// @Summary List team objectives
// @Tags team-objectives
// @Produce json
// @Param team_id query string false "Scope to one team (UUID)"
// @Param active query bool false "Only active objectives"
// @Success 200 {array} models.TeamObjective "Successfully retrieved objectives"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives [get]
func (h *TeamObjectiveHandler) ListTeamObjectives(c *gin.Context) {
	teamID, ok := parseUUIDQuery(c, "team_id")
	if !ok {
		return
	}
	activeOnly := c.Query("active") == "true"

	objectives, err := h.service.List(c.Request.Context(), teamID, activeOnly)
	if err != nil {
		handleError(c, err, "Failed to list team objectives")
		return
	}

	c.JSON(http.StatusOK, objectives)
}

// GetTeamObjective handles GET /api/v1/team-objectives/:id
// @Summary Get team objective by ID
// @Tags team-objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} models.TeamObjective "Successfully retrieved objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives/{id} [get]
func (h *TeamObjectiveHandler) GetTeamObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	objective, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get team objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// GetTeamObjectiveProgress handles GET /api/v1/team-objectives/:id/progress
// @Summary Get derived team objective progress
// @Tags team-objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 200 {object} service.ObjectiveProgressResponse "Successfully retrieved progress"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives/{id}/progress [get]
func (h *TeamObjectiveHandler) GetTeamObjectiveProgress(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get team objective progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// UpdateTeamObjective handles PUT /api/v1/team-objectives/:id
// @Summary Update a team objective
// @Tags team-objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateTeamObjectiveRequest true "Objective data"
// @Success 200 {object} models.TeamObjective "Successfully updated objective"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives/{id} [put]
func (h *TeamObjectiveHandler) UpdateTeamObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamObjectiveRequest
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
		handleError(c, err, "Failed to update team objective")
		return
	}

	c.JSON(http.StatusOK, objective)
}

// DeleteTeamObjective handles DELETE /api/v1/team-objectives/:id
// @Summary Delete a team objective and its key results
// @Tags team-objectives
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Success 204 "Successfully deleted objective"
// @Failure 400 {object} map[string]interface{} "Invalid objective ID"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives/{id} [delete]
func (h *TeamObjectiveHandler) DeleteTeamObjective(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete team objective")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddTeamKeyResult handles POST /api/v1/team-objectives/:id/key-results
// @Summary Add a key result to a team objective
// @Description Assigned-ownership key results require an assignee
// @Tags team-objectives
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param key_result body service.TeamKeyResultRequest true "Key result data"
// @Success 201 {object} models.TeamKeyResult "Successfully created key result"
// @Failure 400 {object} map[string]interface{} "Invalid request body or missing assignee"
// @Failure 404 {object} map[string]interface{} "Objective not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-objectives/{id}/key-results [post]
func (h *TeamObjectiveHandler) AddTeamKeyResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.TeamKeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	kr, err := h.service.AddKeyResult(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssigneeRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to add key result")
		return
	}

	c.JSON(http.StatusCreated, kr)
}

// UpdateTeamKeyResult handles PUT /api/v1/team-key-results/:id
// @Summary Update a team key result
// @Tags team-objectives
// @Accept json
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Param key_result body service.TeamKeyResultRequest true "Key result data"
// @Success 200 {object} models.TeamKeyResult "Successfully updated key result"
// @Failure 400 {object} map[string]interface{} "Invalid request body or missing assignee"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-key-results/{id} [put]
func (h *TeamObjectiveHandler) UpdateTeamKeyResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.TeamKeyResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	kr, err := h.service.UpdateKeyResult(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssigneeRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to update key result")
		return
	}

	c.JSON(http.StatusOK, kr)
}

// DeleteTeamKeyResult handles DELETE /api/v1/team-key-results/:id
// @Summary Delete a team key result
// @Tags team-objectives
// @Produce json
// @Param id path string true "Key result ID (UUID)"
// @Success 204 "Successfully deleted key result"
// @Failure 400 {object} map[string]interface{} "Invalid key result ID"
// @Failure 404 {object} map[string]interface{} "Key result not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /team-key-results/{id} [delete]
func (h *TeamObjectiveHandler) DeleteTeamKeyResult(c *gin.Context) {
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
