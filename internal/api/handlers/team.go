package handlers

import (
	"errors"
	"net/http"

	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// CreateTeam handles POST /api/v1/teams
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Referenced entity not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	team, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to create team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /api/v1/teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Param active query bool false "Only active teams"
// @Success 200 {array} models.Team "Successfully retrieved teams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	teams, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		handleError(c, err, "Failed to list teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamHierarchy handles GET /api/v1/teams/hierarchy
// @Summary Get the team hierarchy
// @Description Get all teams as a forest; orphans and detached cycle members are promoted to roots
// @Tags teams
// @Produce json
// @Success 200 {object} service.HierarchyResponse "Successfully retrieved hierarchy"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/hierarchy [get]
func (h *TeamHandler) GetTeamHierarchy(c *gin.Context) {
	hierarchy, err := h.service.GetHierarchy(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to get team hierarchy")
		return
	}

	c.JSON(http.StatusOK, hierarchy)
}

// GetTeam handles GET /api/v1/teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamMembers handles GET /api/v1/teams/:id/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} models.User "Successfully retrieved members"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/members [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.service.GetMembers(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get team members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateTeam handles PUT /api/v1/teams/:id
// @Summary Update a team
// @Description Update a team; parent changes that would create a cycle are rejected
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} models.Team "Successfully updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request or team cycle"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	team, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamCycle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to update team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /api/v1/teams/:id
// @Summary Delete a team
// @Description Delete a team that no user, child team, or objective references
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 409 {object} map[string]interface{} "Team may be in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete team")
		return
	}

	c.Status(http.StatusNoContent)
}
