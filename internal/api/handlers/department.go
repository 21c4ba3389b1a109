package handlers

import (
	"net/http"

	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for departments
type DepartmentHandler struct {
	service service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// CreateDepartment handles POST /api/v1/departments
// @Summary Create a new department
// @Description Create a department with a unique code
// @Tags departments
// @Accept json
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department data"
// @Success 201 {object} models.Department "Successfully created department"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Department code already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, "Failed to create department")
		return
	}

	c.JSON(http.StatusCreated, department)
}

// ListDepartments handles GET /api/v1/departments
// @Summary List departments
// @Description Get all departments ordered by sort order then name
// @Tags departments
// @Produce json
// @Param active query bool false "Only active departments"
// @Success 200 {array} models.Department "Successfully retrieved departments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	departments, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		handleError(c, err, "Failed to list departments")
		return
	}

	c.JSON(http.StatusOK, departments)
}

// GetDepartment handles GET /api/v1/departments/:id
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 200 {object} models.Department "Successfully retrieved department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	department, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// UpdateDepartment handles PUT /api/v1/departments/:id
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Param department body service.UpdateDepartmentRequest true "Department data"
// @Success 200 {object} models.Department "Successfully updated department"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 409 {object} map[string]interface{} "Department code already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	department, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update department")
		return
	}

	c.JSON(http.StatusOK, department)
}

// DeleteDepartment handles DELETE /api/v1/departments/:id
// @Summary Delete a department
// @Description Delete a department that no team or user references
// @Tags departments
// @Produce json
// @Param id path string true "Department ID (UUID)"
// @Success 204 "Successfully deleted department"
// @Failure 400 {object} map[string]interface{} "Invalid department ID"
// @Failure 404 {object} map[string]interface{} "Department not found"
// @Failure 409 {object} map[string]interface{} "Department may be in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete department")
		return
	}

	c.Status(http.StatusNoContent)
}
