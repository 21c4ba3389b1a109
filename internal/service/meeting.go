package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingService handles business logic for one-on-one meetings
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repository.MeetingRepositoryInterface, userRepo repository.UserRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *MeetingService {
	return &MeetingService{
		repo:      repo,
		userRepo:  userRepo,
		cache:     qc,
		validator: validator,
	}
}

// CreateMeetingRequest represents the request to schedule a one-on-one
type CreateMeetingRequest struct {
	ManagerID   uuid.UUID       `json:"manager_id" validate:"required"`
	EmployeeID  uuid.UUID       `json:"employee_id" validate:"required"`
	ScheduledAt time.Time       `json:"scheduled_at" validate:"required"`
	Agenda      string          `json:"agenda" validate:"max=2000"`
	ActionItems json.RawMessage `json:"action_items,omitempty"`
}

// UpdateMeetingRequest represents the request to update a one-on-one
type UpdateMeetingRequest struct {
	ScheduledAt   time.Time            `json:"scheduled_at" validate:"required"`
	Agenda        string               `json:"agenda" validate:"max=2000"`
	ManagerNotes  string               `json:"manager_notes" validate:"max=2000"`
	EmployeeNotes string               `json:"employee_notes" validate:"max=2000"`
	ActionItems   json.RawMessage      `json:"action_items,omitempty"`
	Status        models.MeetingStatus `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

// Create schedules a new one-on-one meeting
func (s *MeetingService) Create(ctx context.Context, req *CreateMeetingRequest) (*models.Meeting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.ManagerID == req.EmployeeID {
		return nil, apperrors.ErrMeetingSameParticipant
	}
	if err := validateActionItems(req.ActionItems); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(req.ManagerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManagerNotFound
		}
		return nil, fmt.Errorf("failed to verify manager: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	meeting := &models.Meeting{
		ManagerID:   req.ManagerID,
		EmployeeID:  req.EmployeeID,
		ScheduledAt: req.ScheduledAt,
		Agenda:      req.Agenda,
		ActionItems: req.ActionItems,
		Status:      models.MeetingStatusScheduled,
	}
	if err := s.repo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixMeetings)
	return meeting, nil
}

// GetByID retrieves a meeting by ID
func (s *MeetingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	meeting, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListByParticipant retrieves meetings where the user is manager or employee,
// optionally filtered by status
func (s *MeetingService) ListByParticipant(ctx context.Context, userID uuid.UUID, status models.MeetingStatus) ([]models.Meeting, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of scheduled, completed, cancelled")
	}

	cacheKey := fmt.Sprintf("participant:%s:%s", userID, status)
	var cached []models.Meeting
	if s.cache.Get(ctx, cache.PrefixMeetings, cacheKey, &cached) {
		return cached, nil
	}

	meetings, err := s.repo.GetByParticipant(userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixMeetings, cacheKey, meetings)
	return meetings, nil
}

// Update updates a meeting's schedule, notes, and status
func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, req *UpdateMeetingRequest) (*models.Meeting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateActionItems(req.ActionItems); err != nil {
		return nil, err
	}

	meeting, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	meeting.ScheduledAt = req.ScheduledAt
	meeting.Agenda = req.Agenda
	meeting.ManagerNotes = req.ManagerNotes
	meeting.EmployeeNotes = req.EmployeeNotes
	meeting.ActionItems = req.ActionItems
	meeting.Status = req.Status

	if err := s.repo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixMeetings)
	return meeting, nil
}

// Delete deletes a meeting
func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixMeetings)
	return nil
}

// validateActionItems requires the blob, when present, to be a JSON array
func validateActionItems(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return apperrors.NewValidationError("action_items", "must be a JSON array")
	}
	return nil
}
