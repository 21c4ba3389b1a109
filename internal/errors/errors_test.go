package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "goal"}
		assert.Equal(t, "goal not found", err.Error())
	})

	t.Run("Is matches same entity", func(t *testing.T) {
		assert.True(t, errors.Is(ErrGoalNotFound, &NotFoundError{Entity: "goal"}))
		assert.False(t, errors.Is(ErrGoalNotFound, &NotFoundError{Entity: "team"}))
	})

	t.Run("Is matches through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get goal: %w", ErrGoalNotFound)
		assert.True(t, errors.Is(wrapped, ErrGoalNotFound))
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "department already exists with this code", ErrDepartmentCodeExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "thing"}
		assert.Equal(t, "thing already exists", err.Error())
	})

	t.Run("IsAlreadyExists detects wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("create failed: %w", ErrUserExists)
		assert.True(t, IsAlreadyExists(wrapped))
		assert.False(t, IsAlreadyExists(errors.New("other")))
	})
}

func TestInUseError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "department may be in use and cannot be deleted", ErrDepartmentInUse.Error())
	})

	t.Run("IsInUse detects wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("delete failed: %w", ErrCompetencyInUse)
		assert.True(t, IsInUse(wrapped))
		assert.False(t, IsInUse(ErrGoalNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("With field", func(t *testing.T) {
		err := &ValidationError{Field: "end_date", Message: "must not be before start_date"}
		assert.Equal(t, "validation error: end_date - must not be before start_date", err.Error())
	})

	t.Run("Without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("headers", "not valid JSON")))
		assert.False(t, IsValidation(ErrInvalidDateRange))
	})
}

func TestAuthenticationError(t *testing.T) {
	assert.Equal(t, "session cookie missing", ErrSessionMissing.Error())
	assert.True(t, IsAuthentication(fmt.Errorf("auth: %w", ErrSessionInvalid)))
	assert.False(t, IsAuthentication(ErrGoalNotFound))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "meeting not found", NewNotFoundError("meeting").Error())
	assert.Equal(t, "webhook already exists with this name", NewAlreadyExistsError("webhook", "with this name").Error())
	assert.Equal(t, "team may be in use and cannot be deleted", NewInUseError("team").Error())
}
