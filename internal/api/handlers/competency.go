package handlers

import (
	"net/http"

	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompetencyHandler handles HTTP requests for the competency catalog and
// per-user proficiency records
type CompetencyHandler struct {
	service service.CompetencyServiceInterface
}

// NewCompetencyHandler creates a new competency handler
func NewCompetencyHandler(service service.CompetencyServiceInterface) *CompetencyHandler {
	return &CompetencyHandler{service: service}
}

// CreateCompetency handles POST /api/v1/competencies
// @Summary Create a catalog competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param competency body service.CompetencyRequest true "Competency data"
// @Success 201 {object} models.Competency "Successfully created competency"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /competencies [post]
func (h *CompetencyHandler) CreateCompetency(c *gin.Context) {
	var req service.CompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	competency, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to create competency")
		return
	}

	c.JSON(http.StatusCreated, competency)
}

// ListCompetencies handles GET /api/v1/competencies
// @Summary List the competency catalog
// @Tags competencies
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} models.Competency "Successfully retrieved competencies"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /competencies [get]
func (h *CompetencyHandler) ListCompetencies(c *gin.Context) {
	competencies, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		handleError(c, err, "Failed to list competencies")
		return
	}

	c.JSON(http.StatusOK, competencies)
}

// GetCompetency handles GET /api/v1/competencies/:id
// @Summary Get competency by ID
// @Tags competencies
// @Produce json
// @Param id path string true "Competency ID (UUID)"
// @Success 200 {object} models.Competency "Successfully retrieved competency"
// @Failure 400 {object} map[string]interface{} "Invalid competency ID"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /competencies/{id} [get]
func (h *CompetencyHandler) GetCompetency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	competency, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get competency")
		return
	}

	c.JSON(http.StatusOK, competency)
}

// UpdateCompetency handles PUT /api/v1/competencies/:id
// @Summary Update a catalog competency
// @Tags competencies
// @Accept json
// @Produce json
// @Param id path string true "Competency ID (UUID)"
// @Param competency body service.CompetencyRequest true "Competency data"
// @Success 200 {object} models.Competency "Successfully updated competency"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /competencies/{id} [put]
func (h *CompetencyHandler) UpdateCompetency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	competency, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update competency")
		return
	}

	c.JSON(http.StatusOK, competency)
}

// DeleteCompetency handles DELETE /api/v1/competencies/:id
// @Summary Delete a catalog competency
// @Description Delete a competency that no record, plan, or resource references
// @Tags competencies
// @Produce json
// @Param id path string true "Competency ID (UUID)"
// @Success 204 "Successfully deleted competency"
// @Failure 400 {object} map[string]interface{} "Invalid competency ID"
// @Failure 404 {object} map[string]interface{} "Competency not found"
// @Failure 409 {object} map[string]interface{} "Competency may be in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /competencies/{id} [delete]
func (h *CompetencyHandler) DeleteCompetency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete competency")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetUserCompetency handles PUT /api/v1/users/:id/competencies
// @Summary Record a user's proficiency
// @Description Creates or refreshes the unique (user, competency) record and stamps the assessment time
// @Tags competencies
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param competency body service.UserCompetencyRequest true "Proficiency data"
// @Success 200 {object} service.UserCompetencyResponse "Successfully recorded proficiency"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User or competency not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/{id}/competencies [put]
func (h *CompetencyHandler) SetUserCompetency(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UserCompetencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	record, err := h.service.SetUserCompetency(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err, "Failed to record proficiency")
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListUserCompetencies handles GET /api/v1/users/:id/competencies
// @Summary List a user's proficiency records
// @Tags competencies
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {array} service.UserCompetencyResponse "Successfully retrieved records"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/{id}/competencies [get]
func (h *CompetencyHandler) ListUserCompetencies(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	records, err := h.service.ListUserCompetencies(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err, "Failed to list proficiency records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteUserCompetency handles DELETE /api/v1/user-competencies/:id
// @Summary Delete a proficiency record
// @Tags competencies
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 204 "Successfully deleted record"
// @Failure 400 {object} map[string]interface{} "Invalid record ID"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /user-competencies/{id} [delete]
func (h *CompetencyHandler) DeleteUserCompetency(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUserCompetency(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete proficiency record")
		return
	}

	c.Status(http.StatusNoContent)
}
