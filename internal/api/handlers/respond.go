package handlers

import (
	"errors"
	"net/http"

	apperrors "peakform-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// handleError maps service errors to HTTP responses. Handlers check their
// own business sentinels first and fall through to this for the common
// classes.
func handleError(c *gin.Context, err error, fallback string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsInUse(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// parseUUIDParam parses a path parameter as a UUID, responding 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery parses an optional query parameter as a UUID pointer
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": invalid UUID format"})
		return nil, false
	}
	return &id, true
}
