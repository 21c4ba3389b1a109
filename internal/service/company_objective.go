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

// CompanyObjectiveService handles business logic for company objectives and
// their key results
type CompanyObjectiveService struct {
	repo      repository.CompanyObjectiveRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewCompanyObjectiveService creates a new company objective service
func NewCompanyObjectiveService(repo repository.CompanyObjectiveRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *CompanyObjectiveService {
	return &CompanyObjectiveService{repo: repo, cache: qc, validator: validator}
}

// CreateObjectiveRequest represents the request to create a company objective
type CreateObjectiveRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"max=1000"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	CreatedBy   uuid.UUID `json:"created_by" validate:"required"`
}

// UpdateObjectiveRequest represents the request to update a company objective
type UpdateObjectiveRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"max=1000"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// KeyResultRequest represents the request to create or update a key result
type KeyResultRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	TargetValue  float64 `json:"target_value" validate:"required,gt=0"`
	CurrentValue float64 `json:"current_value" validate:"gte=0"`
	Unit         string  `json:"unit" validate:"max=30"`
}

// ObjectiveProgressResponse reports derived objective completion
type ObjectiveProgressResponse struct {
	ObjectiveID    uuid.UUID `json:"objective_id"`
	Progress       float64   `json:"progress"`
	KeyResultCount int       `json:"key_result_count"`
	CompletedCount int       `json:"completed_count"`
}

// Create creates a new company objective
func (s *CompanyObjectiveService) Create(ctx context.Context, req *CreateObjectiveRequest) (*models.CompanyObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	objective := &models.CompanyObjective{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   req.CreatedBy,
		IsActive:    true,
	}

	if err := s.repo.Create(objective); err != nil {
		return nil, fmt.Errorf("failed to create company objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return objective, nil
}

// GetByID retrieves a company objective with its key results
func (s *CompanyObjectiveService) GetByID(ctx context.Context, id uuid.UUID) (*models.CompanyObjective, error) {
	objective, err := s.repo.GetWithKeyResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get company objective: %w", err)
	}
	return objective, nil
}

// List retrieves all company objectives
func (s *CompanyObjectiveService) List(ctx context.Context, activeOnly bool) ([]models.CompanyObjective, error) {
	cacheKey := "all"
	if activeOnly {
		cacheKey = "active"
	}
	var cached []models.CompanyObjective
	if s.cache.Get(ctx, cache.PrefixObjectives, cacheKey, &cached) {
		return cached, nil
	}

	objectives, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list company objectives: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixObjectives, cacheKey, objectives)
	return objectives, nil
}

// GetProgress reports the objective's derived completion
func (s *CompanyObjectiveService) GetProgress(ctx context.Context, id uuid.UUID) (*ObjectiveProgressResponse, error) {
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

// Update updates a company objective
func (s *CompanyObjectiveService) Update(ctx context.Context, id uuid.UUID, req *UpdateObjectiveRequest) (*models.CompanyObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	objective, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to get company objective: %w", err)
	}

	objective.Title = req.Title
	objective.Description = req.Description
	objective.StartDate = req.StartDate
	objective.EndDate = req.EndDate
	if req.IsActive != nil {
		objective.IsActive = *req.IsActive
	}

	if err := s.repo.Update(objective); err != nil {
		return nil, fmt.Errorf("failed to update company objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return objective, nil
}

// Delete deletes a company objective and its key results
func (s *CompanyObjectiveService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyObjectiveNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewInUseError("company objective")
		}
		return fmt.Errorf("failed to delete company objective: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return nil
}

// AddKeyResult creates a key result under an objective
func (s *CompanyObjectiveService) AddKeyResult(ctx context.Context, objectiveID uuid.UUID, req *KeyResultRequest) (*models.KeyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(objectiveID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyObjectiveNotFound
		}
		return nil, fmt.Errorf("failed to verify objective: %w", err)
	}

	kr := &models.KeyResult{
		ObjectiveID:  objectiveID,
		Title:        req.Title,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	}

	if err := s.repo.CreateKeyResult(kr); err != nil {
		return nil, fmt.Errorf("failed to create key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return kr, nil
}

// UpdateKeyResult updates a key result
func (s *CompanyObjectiveService) UpdateKeyResult(ctx context.Context, id uuid.UUID, req *KeyResultRequest) (*models.KeyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	kr, err := s.repo.GetKeyResultByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to get key result: %w", err)
	}

	kr.Title = req.Title
	kr.TargetValue = req.TargetValue
	kr.CurrentValue = req.CurrentValue
	kr.Unit = req.Unit

	if err := s.repo.UpdateKeyResult(kr); err != nil {
		return nil, fmt.Errorf("failed to update key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return kr, nil
}

// DeleteKeyResult deletes a key result
func (s *CompanyObjectiveService) DeleteKeyResult(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteKeyResult(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKeyResultNotFound
		}
		return fmt.Errorf("failed to delete key result: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixObjectives, cache.PrefixReports)
	return nil
}
