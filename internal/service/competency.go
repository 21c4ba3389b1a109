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

// CompetencyService handles business logic for the competency catalog and
// per-user proficiency records
type CompetencyService struct {
	repo      repository.CompetencyRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewCompetencyService creates a new competency service
func NewCompetencyService(repo repository.CompetencyRepositoryInterface, userRepo repository.UserRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *CompetencyService {
	return &CompetencyService{
		repo:      repo,
		userRepo:  userRepo,
		cache:     qc,
		validator: validator,
	}
}

// CompetencyRequest represents the request to create or update a competency
type CompetencyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UserCompetencyRequest represents the request to record a user's proficiency
type UserCompetencyRequest struct {
	CompetencyID uuid.UUID `json:"competency_id" validate:"required"`
	CurrentLevel int       `json:"current_level" validate:"gte=0,lte=100"`
	TargetLevel  int       `json:"target_level" validate:"gte=0,lte=100"`
}

// UserCompetencyResponse decorates a proficiency record with its derived gap
type UserCompetencyResponse struct {
	models.UserCompetency
	Gap int `json:"gap"`
}

// Create creates a new catalog competency
func (s *CompetencyService) Create(ctx context.Context, req *CompetencyRequest) (*models.Competency, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	competency := &models.Competency{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.repo.Create(competency); err != nil {
		return nil, fmt.Errorf("failed to create competency: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixCompetencies)
	return competency, nil
}

// GetByID retrieves a competency by ID
func (s *CompetencyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Competency, error) {
	competency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompetencyNotFound
		}
		return nil, fmt.Errorf("failed to get competency: %w", err)
	}
	return competency, nil
}

// List retrieves the competency catalog, optionally filtered by category
func (s *CompetencyService) List(ctx context.Context, category string) ([]models.Competency, error) {
	cacheKey := fmt.Sprintf("list:%s", category)
	var cached []models.Competency
	if s.cache.Get(ctx, cache.PrefixCompetencies, cacheKey, &cached) {
		return cached, nil
	}

	competencies, err := s.repo.GetAll(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list competencies: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixCompetencies, cacheKey, competencies)
	return competencies, nil
}

// Update updates a catalog competency
func (s *CompetencyService) Update(ctx context.Context, id uuid.UUID, req *CompetencyRequest) (*models.Competency, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	competency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompetencyNotFound
		}
		return nil, fmt.Errorf("failed to get competency: %w", err)
	}

	competency.Name = req.Name
	competency.Category = req.Category
	competency.Description = req.Description
	if err := s.repo.Update(competency); err != nil {
		return nil, fmt.Errorf("failed to update competency: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixCompetencies)
	return competency, nil
}

// Delete deletes a catalog competency. Fails while proficiency records,
// plans, or resources still reference it.
func (s *CompetencyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompetencyNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrCompetencyInUse
		}
		return fmt.Errorf("failed to delete competency: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixCompetencies)
	return nil
}

// SetUserCompetency records or refreshes a user's proficiency for one
// competency. The (user, competency) pair is unique; a repeated submission
// updates the existing record and stamps the assessment time.
func (s *CompetencyService) SetUserCompetency(ctx context.Context, userID uuid.UUID, req *UserCompetencyRequest) (*UserCompetencyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if _, err := s.repo.GetByID(req.CompetencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompetencyNotFound
		}
		return nil, fmt.Errorf("failed to verify competency: %w", err)
	}

	now := time.Now()
	existing, err := s.findUserCompetency(userID, req.CompetencyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.CurrentLevel = req.CurrentLevel
		existing.TargetLevel = req.TargetLevel
		existing.LastAssessedAt = &now
		if err := s.repo.UpdateUserCompetency(existing); err != nil {
			return nil, fmt.Errorf("failed to update user competency: %w", err)
		}
		s.cache.Invalidate(ctx, cache.PrefixCompetencies, cache.PrefixReports)
		return toUserCompetencyResponse(existing), nil
	}

	uc := &models.UserCompetency{
		UserID:         userID,
		CompetencyID:   req.CompetencyID,
		CurrentLevel:   req.CurrentLevel,
		TargetLevel:    req.TargetLevel,
		LastAssessedAt: &now,
	}
	if err := s.repo.CreateUserCompetency(uc); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserCompetencyExists
		}
		return nil, fmt.Errorf("failed to create user competency: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixCompetencies, cache.PrefixReports)
	return toUserCompetencyResponse(uc), nil
}

// ListUserCompetencies retrieves all proficiency records for a user
func (s *CompetencyService) ListUserCompetencies(ctx context.Context, userID uuid.UUID) ([]UserCompetencyResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	records, err := s.repo.GetUserCompetencies(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user competencies: %w", err)
	}

	responses := make([]UserCompetencyResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toUserCompetencyResponse(&records[i]))
	}
	return responses, nil
}

// DeleteUserCompetency removes a user's proficiency record
func (s *CompetencyService) DeleteUserCompetency(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteUserCompetency(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserCompetencyNotFound
		}
		return fmt.Errorf("failed to delete user competency: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixCompetencies, cache.PrefixReports)
	return nil
}

func (s *CompetencyService) findUserCompetency(userID, competencyID uuid.UUID) (*models.UserCompetency, error) {
	records, err := s.repo.GetUserCompetencies(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user competencies: %w", err)
	}
	for i := range records {
		if records[i].CompetencyID == competencyID {
			return &records[i], nil
		}
	}
	return nil, nil
}

func toUserCompetencyResponse(uc *models.UserCompetency) *UserCompetencyResponse {
	return &UserCompetencyResponse{
		UserCompetency: *uc,
		Gap:            uc.Gap(),
	}
}
