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

// DevelopmentPlanService handles business logic for development plans
type DevelopmentPlanService struct {
	repo           repository.DevelopmentPlanRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	competencyRepo repository.CompetencyRepositoryInterface
	cache          *cache.QueryCache
	validator      *validator.Validate
}

// NewDevelopmentPlanService creates a new development plan service
func NewDevelopmentPlanService(repo repository.DevelopmentPlanRepositoryInterface, userRepo repository.UserRepositoryInterface, competencyRepo repository.CompetencyRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *DevelopmentPlanService {
	return &DevelopmentPlanService{
		repo:           repo,
		userRepo:       userRepo,
		competencyRepo: competencyRepo,
		cache:          qc,
		validator:      validator,
	}
}

// CreateDevelopmentPlanRequest represents the request to create a plan
type CreateDevelopmentPlanRequest struct {
	UserID       uuid.UUID  `json:"user_id" validate:"required"`
	CompetencyID *uuid.UUID `json:"competency_id,omitempty"`
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Description  string     `json:"description" validate:"max=1000"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// UpdateDevelopmentPlanRequest represents the request to update a plan
type UpdateDevelopmentPlanRequest struct {
	CompetencyID *uuid.UUID        `json:"competency_id,omitempty"`
	Title        string            `json:"title" validate:"required,min=1,max=200"`
	Description  string            `json:"description" validate:"max=1000"`
	Status       models.PlanStatus `json:"status" validate:"required,oneof=in_progress completed on_hold"`
	Progress     int               `json:"progress" validate:"gte=0,lte=100"`
	DueDate      *time.Time        `json:"due_date,omitempty"`
}

// Create creates a new development plan
func (s *DevelopmentPlanService) Create(ctx context.Context, req *CreateDevelopmentPlanRequest) (*models.DevelopmentPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if err := s.verifyCompetency(req.CompetencyID); err != nil {
		return nil, err
	}

	plan := &models.DevelopmentPlan{
		UserID:       req.UserID,
		CompetencyID: req.CompetencyID,
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.PlanStatusInProgress,
		DueDate:      req.DueDate,
	}
	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create development plan: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixPlans, cache.PrefixReports)
	return plan, nil
}

// GetByID retrieves a development plan by ID
func (s *DevelopmentPlanService) GetByID(ctx context.Context, id uuid.UUID) (*models.DevelopmentPlan, error) {
	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDevelopmentPlanNotFound
		}
		return nil, fmt.Errorf("failed to get development plan: %w", err)
	}
	return plan, nil
}

// ListByUser retrieves all development plans for a user
func (s *DevelopmentPlanService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.DevelopmentPlan, error) {
	cacheKey := fmt.Sprintf("user:%s", userID)
	var cached []models.DevelopmentPlan
	if s.cache.Get(ctx, cache.PrefixPlans, cacheKey, &cached) {
		return cached, nil
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	plans, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list development plans: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixPlans, cacheKey, plans)
	return plans, nil
}

// Update updates a development plan. Setting status to completed pins
// progress to 100.
func (s *DevelopmentPlanService) Update(ctx context.Context, id uuid.UUID, req *UpdateDevelopmentPlanRequest) (*models.DevelopmentPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	plan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDevelopmentPlanNotFound
		}
		return nil, fmt.Errorf("failed to get development plan: %w", err)
	}

	if err := s.verifyCompetency(req.CompetencyID); err != nil {
		return nil, err
	}

	plan.CompetencyID = req.CompetencyID
	plan.Title = req.Title
	plan.Description = req.Description
	plan.Status = req.Status
	plan.Progress = req.Progress
	plan.DueDate = req.DueDate
	if plan.Status == models.PlanStatusCompleted {
		plan.Progress = 100
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update development plan: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixPlans, cache.PrefixReports)
	return plan, nil
}

// Delete deletes a development plan
func (s *DevelopmentPlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDevelopmentPlanNotFound
		}
		return fmt.Errorf("failed to delete development plan: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixPlans, cache.PrefixReports)
	return nil
}

func (s *DevelopmentPlanService) verifyCompetency(competencyID *uuid.UUID) error {
	if competencyID == nil {
		return nil
	}
	if _, err := s.competencyRepo.GetByID(*competencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompetencyNotFound
		}
		return fmt.Errorf("failed to verify competency: %w", err)
	}
	return nil
}
