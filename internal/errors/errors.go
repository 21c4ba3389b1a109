package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this code"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InUseError represents a delete rejected by referential integrity
type InUseError struct {
	Entity string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s may be in use and cannot be deleted", e.Entity)
}

// Is enables errors.Is() comparison for InUseError
func (e *InUseError) Is(target error) bool {
	t, ok := target.(*InUseError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound             = &NotFoundError{Entity: "user"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrDepartmentNotFound       = &NotFoundError{Entity: "department"}
	ErrCompanyObjectiveNotFound = &NotFoundError{Entity: "company objective"}
	ErrKeyResultNotFound        = &NotFoundError{Entity: "key result"}
	ErrTeamObjectiveNotFound    = &NotFoundError{Entity: "team objective"}
	ErrTeamKeyResultNotFound    = &NotFoundError{Entity: "team key result"}
	ErrGoalNotFound             = &NotFoundError{Entity: "goal"}
	ErrCheckInNotFound          = &NotFoundError{Entity: "check-in"}
	ErrCompetencyNotFound       = &NotFoundError{Entity: "competency"}
	ErrUserCompetencyNotFound   = &NotFoundError{Entity: "user competency"}
	ErrDevelopmentPlanNotFound  = &NotFoundError{Entity: "development plan"}
	ErrLearningResourceNotFound = &NotFoundError{Entity: "learning resource"}
	ErrMeetingNotFound          = &NotFoundError{Entity: "meeting"}
	ErrRecognitionNotFound      = &NotFoundError{Entity: "recognition"}
	ErrWebhookConfigNotFound    = &NotFoundError{Entity: "webhook configuration"}
	ErrManagerNotFound          = &NotFoundError{Entity: "manager"}
	ErrTeamLeadNotFound         = &NotFoundError{Entity: "team lead"}
)

// Already Exists Errors
var (
	ErrUserExists           = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrDepartmentCodeExists = &AlreadyExistsError{Entity: "department", Context: "with this code"}
	ErrUserCompetencyExists = &AlreadyExistsError{Entity: "user competency", Context: "for this user and competency"}
)

// In Use Errors (delete blocked by referential integrity)
var (
	ErrDepartmentInUse = &InUseError{Entity: "department"}
	ErrTeamInUse       = &InUseError{Entity: "team"}
	ErrCompetencyInUse = &InUseError{Entity: "competency"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange        = errors.New("end date must not be before start date")
	ErrManagerCycle            = errors.New("manager assignment would create a reporting cycle")
	ErrTeamCycle               = errors.New("parent team assignment would create a cycle")
	ErrSelfRecognition         = errors.New("cannot send recognition to yourself")
	ErrMeetingSameParticipant  = errors.New("manager and employee must be different users")
	ErrAssigneeRequired        = errors.New("assigned key results require an assignee")
	ErrInvalidWebhookHeaders   = errors.New("webhook headers must be a JSON object of string values")
	ErrInvalidEventType        = errors.New("invalid webhook event type")
	ErrInactiveWebhook         = errors.New("webhook configuration is inactive")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrSessionMissing = &AuthenticationError{Message: "session cookie missing"}
	ErrSessionInvalid = &AuthenticationError{Message: "session is invalid or expired"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInUse checks if an error is an InUseError
func IsInUse(err error) bool {
	var inUseErr *InUseError
	return errors.As(err, &inUseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewInUseError creates a new InUseError for a custom entity
func NewInUseError(entity string) error {
	return &InUseError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
