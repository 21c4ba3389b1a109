package handlers

import (
	"errors"
	"net/http"

	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeetingHandler handles HTTP requests for one-on-one meetings
type MeetingHandler struct {
	service service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// CreateMeeting handles POST /api/v1/meetings
// @Summary Schedule a one-on-one
// @Description Manager and employee must be different users
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} models.Meeting "Successfully scheduled meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request body or same participant"
// @Failure 404 {object} map[string]interface{} "Participant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrMeetingSameParticipant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err, "Failed to schedule meeting")
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// ListMeetings handles GET /api/v1/meetings
// @Summary List a participant's meetings
// @Tags meetings
// @Produce json
// @Param user_id query string true "Participant ID (UUID)"
// @Param status query string false "Filter by status" Enums(scheduled, completed, cancelled)
// @Success 200 {array} models.Meeting "Successfully retrieved meetings"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, ok := parseUUIDQuery(c, "user_id")
	if !ok {
		return
	}
	if userID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	status := models.MeetingStatus(c.Query("status"))

	meetings, err := h.service.ListByParticipant(c.Request.Context(), *userID, status)
	if err != nil {
		handleError(c, err, "Failed to list meetings")
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// GetMeeting handles GET /api/v1/meetings/:id
// @Summary Get meeting by ID
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} models.Meeting "Successfully retrieved meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	meeting, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Failed to get meeting")
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// UpdateMeeting handles PUT /api/v1/meetings/:id
// @Summary Update a meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Meeting data"
// @Success 200 {object} models.Meeting "Successfully updated meeting"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meetings/{id} [put]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	meeting, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err, "Failed to update meeting")
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting handles DELETE /api/v1/meetings/:id
// @Summary Delete a meeting
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 204 "Successfully deleted meeting"
// @Failure 400 {object} map[string]interface{} "Invalid meeting ID"
// @Failure 404 {object} map[string]interface{} "Meeting not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Failed to delete meeting")
		return
	}

	c.Status(http.StatusNoContent)
}
