package handlers

import (
	"net/http"

	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportsHandler handles HTTP requests for read-only rollups
type ReportsHandler struct {
	service service.ReportsServiceInterface
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(service service.ReportsServiceInterface) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// GetCompanyReport handles GET /api/v1/reports/company
// @Summary Organization-wide rollup
// @Description Counts by entity plus derived goal and objective progress
// @Tags reports
// @Produce json
// @Success 200 {object} service.CompanyReport "Successfully generated report"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/company [get]
func (h *ReportsHandler) GetCompanyReport(c *gin.Context) {
	report, err := h.service.GetCompanyReport(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate company report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetTeamReport handles GET /api/v1/reports/teams/:id
// @Summary Per-team rollup
// @Description Team members with their goal stats plus team objective progress
// @Tags reports
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamReport "Successfully generated report"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reports/teams/{id} [get]
func (h *ReportsHandler) GetTeamReport(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	report, err := h.service.GetTeamReport(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to generate team report")
		return
	}

	c.JSON(http.StatusOK, report)
}
