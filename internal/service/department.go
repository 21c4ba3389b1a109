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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      repository.DepartmentRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{repo: repo, cache: qc, validator: validator}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Code      string `json:"code" validate:"required,min=1,max=20"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// UpdateDepartmentRequest represents the request to update a department
type UpdateDepartmentRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Code      string `json:"code" validate:"required,min=1,max=20"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

// Create creates a new department
func (s *DepartmentService) Create(ctx context.Context, req *CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Unique code check up front for a clean conflict error
	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing department: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDepartmentCodeExists
	}

	department := &models.Department{
		Name:      req.Name,
		Code:      req.Code,
		SortOrder: req.SortOrder,
		IsActive:  true,
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := s.repo.Create(department); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentCodeExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixDepartments)
	return department, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	department, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

// List retrieves all departments ordered by sort order
func (s *DepartmentService) List(ctx context.Context, activeOnly bool) ([]models.Department, error) {
	cacheKey := "all"
	if activeOnly {
		cacheKey = "active"
	}
	var cached []models.Department
	if s.cache.Get(ctx, cache.PrefixDepartments, cacheKey, &cached) {
		return cached, nil
	}

	departments, err := s.repo.GetAll(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixDepartments, cacheKey, departments)
	return departments, nil
}

// Update updates a department
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, req *UpdateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	department, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Code != department.Code {
		existing, err := s.repo.GetByCode(req.Code)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing department: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrDepartmentCodeExists
		}
	}

	department.Name = req.Name
	department.Code = req.Code
	department.SortOrder = req.SortOrder
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixDepartments)
	return department, nil
}

// Delete deletes a department. A FK restrict from teams or job roles is
// surfaced as an "in use" conflict.
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixDepartments)
	return nil
}
