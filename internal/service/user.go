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

// maxManagerChainDepth bounds the cycle walk so a corrupted chain cannot
// spin forever.
const maxManagerChainDepth = 100

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, teamRepo: teamRepo, cache: qc, validator: validator}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	FirstName string          `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string          `json:"last_name" validate:"required,min=1,max=100"`
	Role      models.UserRole `json:"role" validate:"required,oneof=individual_contributor supervisor leadership"`
	JobTitle  string          `json:"job_title" validate:"max=100"`
	ManagerID *uuid.UUID      `json:"manager_id,omitempty"`
	TeamID    *uuid.UUID      `json:"team_id,omitempty"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	FirstName string          `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string          `json:"last_name" validate:"required,min=1,max=100"`
	Role      models.UserRole `json:"role" validate:"required,oneof=individual_contributor supervisor leadership"`
	JobTitle  string          `json:"job_title" validate:"max=100"`
	ManagerID *uuid.UUID      `json:"manager_id,omitempty"`
	TeamID    *uuid.UUID      `json:"team_id,omitempty"`
	IsActive  *bool           `json:"is_active,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []models.User `json:"users"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	if req.ManagerID != nil {
		if _, err := s.repo.GetByID(*req.ManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrManagerNotFound
			}
			return nil, fmt.Errorf("failed to verify manager: %w", err)
		}
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		JobTitle:  req.JobTitle,
		ManagerID: req.ManagerID,
		TeamID:    req.TeamID,
		IsActive:  true,
	}

	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixUsers)
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List retrieves users with pagination
func (s *UserService) List(ctx context.Context, page, pageSize int) (*UserListResponse, error) {
	offset := (page - 1) * pageSize

	cacheKey := fmt.Sprintf("list:%d:%d", page, pageSize)
	var cached UserListResponse
	if s.cache.Get(ctx, cache.PrefixUsers, cacheKey, &cached) {
		return &cached, nil
	}

	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := &UserListResponse{Users: users, Total: total, Page: page, PageSize: pageSize}
	s.cache.Set(ctx, cache.PrefixUsers, cacheKey, resp)
	return resp, nil
}

// Update updates a user. Manager reassignment is rejected if it would close
// a reporting cycle.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.ManagerID != nil {
		if err := s.checkManagerCycle(id, *req.ManagerID); err != nil {
			return nil, err
		}
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = req.Role
	user.JobTitle = req.JobTitle
	user.ManagerID = req.ManagerID
	user.TeamID = req.TeamID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixUsers, cache.PrefixTeams)
	return user, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		if repository.IsForeignKeyViolation(err) {
			return apperrors.NewInUseError("user")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixUsers, cache.PrefixTeams)
	return nil
}

// GetDirectReports retrieves the users managed by the given user
func (s *UserService) GetDirectReports(ctx context.Context, id uuid.UUID) ([]models.User, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	reports, err := s.repo.GetDirectReports(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct reports: %w", err)
	}
	return reports, nil
}

// checkManagerCycle walks the proposed manager chain upward; finding the
// user being edited means the assignment closes a loop. The schema itself
// does not prevent cycles.
func (s *UserService) checkManagerCycle(userID, managerID uuid.UUID) error {
	if managerID == userID {
		return apperrors.ErrManagerCycle
	}

	current := managerID
	for depth := 0; depth < maxManagerChainDepth; depth++ {
		manager, err := s.repo.GetByID(current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrManagerNotFound
			}
			return fmt.Errorf("failed to walk manager chain: %w", err)
		}
		if manager.ManagerID == nil {
			return nil
		}
		if *manager.ManagerID == userID {
			return apperrors.ErrManagerCycle
		}
		current = *manager.ManagerID
	}
	return apperrors.ErrManagerCycle
}
