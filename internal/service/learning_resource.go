package service

import (
	"context"
	"errors"
	"fmt"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningResourceService handles business logic for the learning catalog
type LearningResourceService struct {
	repo           repository.LearningResourceRepositoryInterface
	competencyRepo repository.CompetencyRepositoryInterface
	cache          *cache.QueryCache
	validator      *validator.Validate
}

// NewLearningResourceService creates a new learning resource service
func NewLearningResourceService(repo repository.LearningResourceRepositoryInterface, competencyRepo repository.CompetencyRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *LearningResourceService {
	return &LearningResourceService{
		repo:           repo,
		competencyRepo: competencyRepo,
		cache:          qc,
		validator:      validator,
	}
}

// LearningResourceRequest represents the request to create or update a resource
type LearningResourceRequest struct {
	Title           string              `json:"title" validate:"required,min=1,max=200"`
	Type            models.ResourceType `json:"type" validate:"required,oneof=course video article book workshop"`
	URL             string              `json:"url" validate:"required,url,max=500"`
	DurationMinutes int                 `json:"duration_minutes" validate:"gte=0"`
	CompetencyID    *uuid.UUID          `json:"competency_id,omitempty"`
}

// Create creates a new learning resource
func (s *LearningResourceService) Create(ctx context.Context, req *LearningResourceRequest) (*models.LearningResource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.verifyCompetency(req.CompetencyID); err != nil {
		return nil, err
	}

	resource := &models.LearningResource{
		Title:           req.Title,
		Type:            req.Type,
		URL:             req.URL,
		DurationMinutes: req.DurationMinutes,
		CompetencyID:    req.CompetencyID,
	}
	if err := s.repo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create learning resource: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixResources)
	return resource, nil
}

// GetByID retrieves a learning resource by ID
func (s *LearningResourceService) GetByID(ctx context.Context, id uuid.UUID) (*models.LearningResource, error) {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLearningResourceNotFound
		}
		return nil, fmt.Errorf("failed to get learning resource: %w", err)
	}
	return resource, nil
}

// List retrieves learning resources filtered by type and competency
func (s *LearningResourceService) List(ctx context.Context, resourceType models.ResourceType, competencyID *uuid.UUID) ([]models.LearningResource, error) {
	if resourceType != "" && !resourceType.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be one of course, video, article, book, workshop")
	}

	cacheKey := fmt.Sprintf("list:%s:%v", resourceType, competencyID)
	var cached []models.LearningResource
	if s.cache.Get(ctx, cache.PrefixResources, cacheKey, &cached) {
		return cached, nil
	}

	resources, err := s.repo.GetAll(resourceType, competencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning resources: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixResources, cacheKey, resources)
	return resources, nil
}

// Update updates a learning resource
func (s *LearningResourceService) Update(ctx context.Context, id uuid.UUID, req *LearningResourceRequest) (*models.LearningResource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resource, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLearningResourceNotFound
		}
		return nil, fmt.Errorf("failed to get learning resource: %w", err)
	}

	if err := s.verifyCompetency(req.CompetencyID); err != nil {
		return nil, err
	}

	resource.Title = req.Title
	resource.Type = req.Type
	resource.URL = req.URL
	resource.DurationMinutes = req.DurationMinutes
	resource.CompetencyID = req.CompetencyID

	if err := s.repo.Update(resource); err != nil {
		return nil, fmt.Errorf("failed to update learning resource: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixResources)
	return resource, nil
}

// Delete deletes a learning resource
func (s *LearningResourceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLearningResourceNotFound
		}
		return fmt.Errorf("failed to delete learning resource: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixResources)
	return nil
}

func (s *LearningResourceService) verifyCompetency(competencyID *uuid.UUID) error {
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
