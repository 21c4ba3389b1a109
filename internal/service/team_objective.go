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

// TeamObjectiveService handles business logic for team objectives and their
// key results
type TeamObjectiveService struct {
	repo          repository.TeamObjectiveRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	objectiveRepo repository.CompanyObjectiveRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	cache         *cache.QueryCache
	validator     *validator.Validate
}

// NewTeamObjectiveService creates a new team objective service
func NewTeamObjectiveService(repo repository.TeamObjectiveRepositoryInterface, teamRepo repository.TeamRepositoryInterface, objectiveRepo repository.CompanyObjectiveRepositoryInterface, userRepo repository.UserRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *TeamObjectiveService {
	return &TeamObjectiveService{
		repo:          repo,
		teamRepo:      teamRepo,
		objectiveRepo: objectiveRepo,
		userRepo:      userRepo,
		cache:         qc,
		validator:     validator,
	}
}

// CreateTeamObjectiveRequest represents the request to create a team objective
type CreateTeamObjectiveRequest struct {
	TeamID             uuid.UUID  `json:"team_id" validate:"required"`
	CompanyObjectiveID *uuid.UUID `json:"company_objective_id,omitempty"`
	Title              string     `json:"title" validate:"required,min=1,max=200"`
	Description        string     `json:"description" validate:"max=1000"`
	StartDate          time.Time  `json:"start_date" validate:"required"`
	EndDate            time.Time  `json:"end_date" validate:"required"`
	CreatedBy          uuid.UUID  `json:"created_by" validate:"required"`
}

// UpdateTeamObjectiveRequest represents the request to update a team objective
type UpdateTeamObjectiveRequest struct {
	CompanyObjectiveID *uuid.UUID `json:"company_objective_id,omitempty"`
	Title              string     `json:"title" validate:"required,min=1,max=200"`
	Description        string     `json:"description" validate:"max=1000"`
	StartDate          time.Time  `json:"start_date" validate:"required"`
	EndDate            time.Time  `json:"end_date" validate:"required"`
	IsActive           *bool      `json:"is_active,omitempty"`
}

// TeamKeyResultRequest represents the request to create or update a team key result
type TeamKeyResultRequest struct {
	Title        string                    `json:"title" validate:"required,min=1,max=200"`
	TargetValue  float64                   `json:"target_value" validate:"required,gt=0"`
	CurrentValue float64                   `json:"current_value" validate:"gte=0"`
	Unit         string                    `json:"unit" validate:"max=30"`
	Ownership    models.KeyResultOwnership `json:"ownership" validate:"required,oneof=shared assigned"`
	AssigneeID   *uuid.UUID                `json:"assignee_id,omitempty"`
}

// Create creates a new team objective
func (s *TeamObjectiveService) Create(ctx context.Context, req *CreateTeamObjectiveRequest) (*models.TeamObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.teamRepo.GetByID(req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if req.CompanyObjectiveID != nil {
		if _, err := s.objectiveRepo.GetByID(*req.CompanyObjectiveID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCompanyObjectiveNotFound
			}
			return nil, fmt.Errorf("failed to verify company objective: %w", err)
		}
	}

	objective := &models.TeamObjective{
		TeamID:             req.TeamID,
		CompanyObjectiveID: req.CompanyObjectiveID,
		Title:              req.Title,
		Description:        req.Description,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		CreatedBy:          req.CreatedBy,
		IsActive:           true,
	}

	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create team objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return objective, nil
}

// GetByID retrieves a team objective with its key results
func (s *TeamObjectiveService) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamObjective, error) {
	objective, err := s.repo.GetWithKeyResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get team objective: %w", err)
	}
	return objective, nil
}

// List retrieves team objectives, optionally scoped to a team
func (s *TeamObjectiveService) List(ctx context.Context, teamID *uuid.UUID, activeOnly bool) ([]models.TeamObjective, error) {
	cacheKey := fmt.Sprintf("list:%v:%t", teamID, activeOnly)
	var cached []models.TeamObjective
	if s.cache.Get(ctx, cache.PrefixTeamObjectives, cacheKey, &cached) {
		return cached, nil
	}

	var objectives []models.TeamObjective
	var err error
	if teamID != nil {
		objectives, err = s.repo.GetByTeamID(*teamID, activeOnly)
	} else {
		objectives, err = s.repo.GetAll(activeOnly)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list team objectives: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixTeamObjectives, cacheKey, objectives)
	return objectives, nil
}

// GetProgress reports the team objective's derived completion
func (s *TeamObjectiveService) GetProgress(ctx context.Context, id uuid.UUID) (*ObjectiveProgressResponse, error) {
	objective, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	completed := 0
	for i := range objective.KeyResults {
		if objective.KeyResults[i].CurrentValue >= objective.KeyResults[i].TargetValue {
			completed++
		}
	}

	return &ObjectiveProgressResponse{
		ObjectiveID:    objective.ID,
		Progress:       objective.Progress(),
		KeyResultCount: len(objective.KeyResults),
		CompletedCount: completed,
	}, nil
}

// Update updates a team objective
func (s *TeamObjectiveService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamObjectiveRequest) (*models.TeamObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	objective, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get team objective: %w", err)
	}

	if req.CompanyObjectiveID != nil {
		if _, err := s.objectiveRepo.GetByID(*req.CompanyObjectiveID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCompanyObjectiveNotFound
			}
			return nil, fmt.Errorf("failed to verify company objective: %w", err)
		}
	}

	objective.CompanyObjectiveID = req.CompanyObjectiveID
	objective.Title = req.Title
	objective.Description = req.Description
	objective.StartDate = req.StartDate
	objective.EndDate = req.EndDate
	if req.IsActive != nil {
		objective.IsActive = *req.IsActive
	}

	if err := s.repo.Update(objective); err != nil {
		return nil, fmt.Errorf("failed to update team objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return objective, nil
}

// Delete deletes a team objective and its key results
func (s *TeamObjectiveService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamObjectiveNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewInUseError("team objective")
		}
		return fmt.Errorf("failed to delete team objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return nil
}

// AddKeyResult creates a key result under a team objective. Assigned key
// results must name an assignee; shared ones must not.
func (s *TeamObjectiveService) AddKeyResult(ctx context.Context, objectiveID uuid.UUID, req *TeamKeyResultRequest) (*models.TeamKeyResult, error) {
	if err := s.validateKeyResult(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(objectiveID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to verify team objective: %w", err)
	}

	kr := &models.TeamKeyResult{
		ObjectiveID:  objectiveID,
		Title:        req.Title,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Ownership:    req.Ownership,
		AssigneeID:   req.AssigneeID,
	}

	if err := s.repo.CreateKeyResult(kr); err != nil {
		return nil, fmt.Errorf("failed to create team key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return kr, nil
}

// UpdateKeyResult updates a team key result
func (s *TeamObjectiveService) UpdateKeyResult(ctx context.Context, id uuid.UUID, req *TeamKeyResultRequest) (*models.TeamKeyResult, error) {
	if err := s.validateKeyResult(req); err != nil {
		return nil, err
	}

	kr, err := s.repo.GetKeyResultByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to get team key result: %w", err)
	}

	kr.Title = req.Title
	kr.TargetValue = req.TargetValue
	kr.CurrentValue = req.CurrentValue
	kr.Unit = req.Unit
	kr.Ownership = req.Ownership
	kr.AssigneeID = req.AssigneeID

	if err := s.repo.UpdateKeyResult(kr); err != nil {
		return nil, fmt.Errorf("failed to update team key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return kr, nil
}

// DeleteKeyResult deletes a team key result
func (s *TeamObjectiveService) DeleteKeyResult(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteKeyResult(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamKeyResultNotFound
		}
		return fmt.Errorf("failed to delete team key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixTeamObjectives, cache.PrefixReports)
	return nil
}

func (s *TeamObjectiveService) validateKeyResult(req *TeamKeyResultRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.Ownership == models.OwnershipAssigned && req.AssigneeID == nil {
		return apperrors.ErrAssigneeRequired
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.GetByID(*req.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("failed to verify assignee: %w", err)
		}
	}
	return nil
}
