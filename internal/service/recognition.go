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

const defaultLeaderboardLimit = 10

// RecognitionService handles business logic for peer recognitions
type RecognitionService struct {
	repo      repository.RecognitionRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewRecognitionService creates a new recognition service
func NewRecognitionService(repo repository.RecognitionRepositoryInterface, userRepo repository.UserRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *RecognitionService {
	return &RecognitionService{
		repo:      repo,
		userRepo:  userRepo,
		cache:     qc,
		validator: validator,
	}
}

// CreateRecognitionRequest represents the request to send a recognition
type CreateRecognitionRequest struct {
	FromUserID uuid.UUID           `json:"from_user_id" validate:"required"`
	ToUserID   uuid.UUID           `json:"to_user_id" validate:"required"`
	Value      models.CompanyValue `json:"value" validate:"required,oneof=customer_first ownership excellence teamwork innovation"`
	Message    string              `json:"message" validate:"required,min=1,max=1000"`
	IsPublic   *bool               `json:"is_public,omitempty"`
}

// RecognitionListResponse represents a paginated recognition feed
type RecognitionListResponse struct {
	Recognitions []models.Recognition `json:"recognitions"`
	Total        int64                `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

// LeaderboardEntry pairs a user with their received recognition count
type LeaderboardEntry struct {
	UserID uuid.UUID    `json:"user_id"`
	User   *models.User `json:"user,omitempty"`
	Count  int64        `json:"count"`
}

// Create sends a recognition from one user to another
func (s *RecognitionService) Create(ctx context.Context, req *CreateRecognitionRequest) (*models.Recognition, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.FromUserID == req.ToUserID {
		return nil, apperrors.ErrSelfRecognition
	}

	if _, err := s.userRepo.GetByID(req.FromUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify sender: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.ToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify recipient: %w", err)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	recognition := &models.Recognition{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Value:      req.Value,
		Message:    req.Message,
		IsPublic:   isPublic,
	}
	if err := s.repo.Create(recognition); err != nil {
		return nil, fmt.Errorf("failed to create recognition: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixRecognitions, cache.PrefixReports)
	return recognition, nil
}

// GetByID retrieves a recognition by ID
func (s *RecognitionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Recognition, error) {
	recognition, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecognitionNotFound
		}
		return nil, fmt.Errorf("failed to get recognition: %w", err)
	}
	return recognition, nil
}

// List retrieves the recognition feed, newest first. Private recognitions
// are excluded unless includePrivate is set.
func (s *RecognitionService) List(ctx context.Context, includePrivate bool, limit, offset int) (*RecognitionListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	cacheKey := fmt.Sprintf("list:%t:%d:%d", includePrivate, limit, offset)
	var cached RecognitionListResponse
	if s.cache.Get(ctx, cache.PrefixRecognitions, cacheKey, &cached) {
		return &cached, nil
	}

	recognitions, total, err := s.repo.GetAll(!includePrivate, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recognitions: %w", err)
	}

	response := &RecognitionListResponse{
		Recognitions: recognitions,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}
	s.cache.Set(ctx, cache.PrefixRecognitions, cacheKey, response)
	return response, nil
}

// GetLeaderboard returns the top recipients of public recognitions
func (s *RecognitionService) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > 100 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	cacheKey := fmt.Sprintf("leaderboard:%d", limit)
	var cached []LeaderboardEntry
	if s.cache.Get(ctx, cache.PrefixRecognitions, cacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.repo.GetLeaderboard(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entry := LeaderboardEntry{UserID: row.UserID, Count: row.Count}
		if user, err := s.userRepo.GetByID(row.UserID); err == nil {
			entry.User = user
		}
		entries = append(entries, entry)
	}

	s.cache.Set(ctx, cache.PrefixRecognitions, cacheKey, entries)
	return entries, nil
}

// Delete deletes a recognition
func (s *RecognitionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecognitionNotFound
		}
		return fmt.Errorf("failed to delete recognition: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixRecognitions, cache.PrefixReports)
	return nil
}
