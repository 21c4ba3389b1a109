package service

import (
	"context"
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

// GoalStatus partitions goals by the derived completion rule
type GoalStatus string

const (
	GoalStatusOpen      GoalStatus = "open"
	GoalStatusCompleted GoalStatus = "completed"
)

// GoalService handles business logic for individual goals and their weekly
// check-ins
type GoalService struct {
	repo              repository.GoalRepositoryInterface
	checkInRepo       repository.CheckInRepositoryInterface
	userRepo          repository.UserRepositoryInterface
	teamObjectiveRepo repository.TeamObjectiveRepositoryInterface
	objectiveRepo     repository.CompanyObjectiveRepositoryInterface
	cache             *cache.QueryCache
	validator         *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(repo repository.GoalRepositoryInterface, checkInRepo repository.CheckInRepositoryInterface, userRepo repository.UserRepositoryInterface, teamObjectiveRepo repository.TeamObjectiveRepositoryInterface, objectiveRepo repository.CompanyObjectiveRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *GoalService {
	return &GoalService{
		repo:              repo,
		checkInRepo:       checkInRepo,
		userRepo:          userRepo,
		teamObjectiveRepo: teamObjectiveRepo,
		objectiveRepo:     objectiveRepo,
		cache:             qc,
		validator:         validator,
	}
}

// CreateGoalRequest represents the request to create a goal
type CreateGoalRequest struct {
	UserID             uuid.UUID              `json:"user_id" validate:"required"`
	TeamObjectiveID    *uuid.UUID             `json:"team_objective_id,omitempty"`
	CompanyObjectiveID *uuid.UUID             `json:"company_objective_id,omitempty"`
	Title              string                 `json:"title" validate:"required,min=1,max=200"`
	Description        string                 `json:"description" validate:"max=1000"`
	TargetValue        float64                `json:"target_value" validate:"required,gt=0"`
	CurrentValue       float64                `json:"current_value" validate:"gte=0"`
	Unit               string                 `json:"unit" validate:"max=30"`
	StartDate          time.Time              `json:"start_date" validate:"required"`
	EndDate            time.Time              `json:"end_date" validate:"required"`
	Confidence         models.ConfidenceLevel `json:"confidence" validate:"omitempty,oneof=green amber red"`
}

// UpdateGoalRequest represents the request to update a goal
type UpdateGoalRequest struct {
	TeamObjectiveID    *uuid.UUID             `json:"team_objective_id,omitempty"`
	CompanyObjectiveID *uuid.UUID             `json:"company_objective_id,omitempty"`
	Title              string                 `json:"title" validate:"required,min=1,max=200"`
	Description        string                 `json:"description" validate:"max=1000"`
	TargetValue        float64                `json:"target_value" validate:"required,gt=0"`
	CurrentValue       float64                `json:"current_value" validate:"gte=0"`
	Unit               string                 `json:"unit" validate:"max=30"`
	StartDate          time.Time              `json:"start_date" validate:"required"`
	EndDate            time.Time              `json:"end_date" validate:"required"`
	Confidence         models.ConfidenceLevel `json:"confidence" validate:"required,oneof=green amber red"`
	IsActive           *bool                  `json:"is_active,omitempty"`
}

// SubmitCheckInRequest represents a weekly check-in submission
type SubmitCheckInRequest struct {
	UserID       uuid.UUID              `json:"user_id" validate:"required"`
	Progress     int                    `json:"progress" validate:"gte=0,lte=100"`
	Confidence   models.ConfidenceLevel `json:"confidence" validate:"required,oneof=green amber red"`
	Achievements string                 `json:"achievements" validate:"max=2000"`
	Challenges   string                 `json:"challenges" validate:"max=2000"`
}

// GoalResponse decorates a goal with its derived fields
type GoalResponse struct {
	models.Goal
	IsCompleted     bool    `json:"is_completed"`
	ProgressPercent float64 `json:"progress_percent"`
}

// Create creates a new goal
func (s *GoalService) Create(ctx context.Context, req *CreateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if err := s.verifyAlignment(req.TeamObjectiveID, req.CompanyObjectiveID); err != nil {
		return nil, err
	}

	confidence := req.Confidence
	if confidence == "" {
		confidence = models.ConfidenceOnTrack
	}

	goal := &models.Goal{
		UserID:             req.UserID,
		TeamObjectiveID:    req.TeamObjectiveID,
		CompanyObjectiveID: req.CompanyObjectiveID,
		Title:              req.Title,
		Description:        req.Description,
		TargetValue:        req.TargetValue,
		CurrentValue:       req.CurrentValue,
		Unit:               req.Unit,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Confidence:         confidence,
		IsActive:           true,
	}

	if err := s.repo.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixGoals, cache.PrefixReports)
	return toGoalResponse(goal), nil
}

// GetByID retrieves a goal by ID
func (s *GoalService) GetByID(ctx context.Context, id uuid.UUID) (*GoalResponse, error) {
	goal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return toGoalResponse(goal), nil
}

// List retrieves goals, optionally scoped to a user and partitioned by the
// derived open/completed status
func (s *GoalService) List(ctx context.Context, userID *uuid.UUID, status GoalStatus) ([]GoalResponse, error) {
	cacheKey := fmt.Sprintf("list:%v:%s", userID, status)
	var cached []GoalResponse
	if s.cache.Get(ctx, cache.PrefixGoals, cacheKey, &cached) {
		return cached, nil
	}

	var goals []models.Goal
	var err error
	if userID != nil {
		goals, err = s.repo.GetByUserID(*userID, false)
	} else {
		goals, err = s.repo.GetAll(false)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp := toGoalResponse(&goals[i])
		switch status {
		case GoalStatusOpen:
			if resp.IsCompleted {
				continue
			}
		case GoalStatusCompleted:
			if !resp.IsCompleted {
				continue
			}
		}
		responses = append(responses, *resp)
	}

	s.cache.Set(ctx, cache.PrefixGoals, cacheKey, responses)
	return responses, nil
}

// Update updates a goal
func (s *GoalService) Update(ctx context.Context, id uuid.UUID, req *UpdateGoalRequest) (*GoalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	goal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	if err := s.verifyAlignment(req.TeamObjectiveID, req.CompanyObjectiveID); err != nil {
		return nil, err
	}

	goal.TeamObjectiveID = req.TeamObjectiveID
	goal.CompanyObjectiveID = req.CompanyObjectiveID
	goal.Title = req.Title
	goal.Description = req.Description
	goal.TargetValue = req.TargetValue
	goal.CurrentValue = req.CurrentValue
	goal.Unit = req.Unit
	goal.StartDate = req.StartDate
	goal.EndDate = req.EndDate
	goal.Confidence = req.Confidence
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}

	if err := s.repo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixGoals, cache.PrefixReports)
	return toGoalResponse(goal), nil
}

// Delete deletes a goal and its check-ins
func (s *GoalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGoalNotFound
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixGoals, cache.PrefixReports)
	return nil
}

// SubmitCheckIn records a weekly check-in dated to the Sunday of the current
// week and syncs the goal's current value and confidence in the same
// transaction. The new current value is derived from the submitted progress
// percentage against the goal's target.
func (s *GoalService) SubmitCheckIn(ctx context.Context, goalID uuid.UUID, req *SubmitCheckInRequest) (*models.CheckIn, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	goal, err := s.repo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	checkIn := &models.CheckIn{
		GoalID:       goalID,
		UserID:       req.UserID,
		Progress:     req.Progress,
		Confidence:   req.Confidence,
		Achievements: req.Achievements,
		Challenges:   req.Challenges,
		WeekStart:    models.WeekStartOf(time.Now()),
	}

	goal.CurrentValue = goal.TargetValue * float64(req.Progress) / 100
	goal.Confidence = req.Confidence

	if err := s.checkInRepo.CreateWithGoalSync(checkIn, goal); err != nil {
		return nil, fmt.Errorf("failed to submit check-in: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixGoals, cache.PrefixReports)
	return checkIn, nil
}

// ListCheckIns retrieves all check-ins for a goal, newest week first
func (s *GoalService) ListCheckIns(ctx context.Context, goalID uuid.UUID) ([]models.CheckIn, error) {
	if _, err := s.repo.GetByID(goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	checkIns, err := s.checkInRepo.GetByGoalID(goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}

func (s *GoalService) verifyAlignment(teamObjectiveID, companyObjectiveID *uuid.UUID) error {
	if teamObjectiveID != nil {
		if _, err := s.teamObjectiveRepo.GetByID(*teamObjectiveID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamObjectiveNotFound
			}
			return fmt.Errorf("failed to verify team objective: %w", err)
		}
	}
	if companyObjectiveID != nil {
		if _, err := s.objectiveRepo.GetByID(*companyObjectiveID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCompanyObjectiveNotFound
			}
			return fmt.Errorf("failed to verify company objective: %w", err)
		}
	}
	return nil
}

func toGoalResponse(goal *models.Goal) *GoalResponse {
	return &GoalResponse{
		Goal:            *goal,
		IsCompleted:     goal.IsCompleted(),
		ProgressPercent: goal.ProgressPercent(),
	}
}
