package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardEntry is an aggregate row for the recognition leaderboard
type LeaderboardEntry struct {
	UserID uuid.UUID `json:"user_id"`
	Count  int64     `json:"count"`
}

// RecognitionRepositoryInterface defines data access for recognitions
type RecognitionRepositoryInterface interface {
	Create(recognition *models.Recognition) error
	GetByID(id uuid.UUID) (*models.Recognition, error)
	GetAll(publicOnly bool, limit, offset int) ([]models.Recognition, int64, error)
	GetByToUserID(toUserID uuid.UUID, limit int) ([]models.Recognition, error)
	GetLeaderboard(limit int) ([]LeaderboardEntry, error)
	Delete(id uuid.UUID) error
}

// RecognitionRepository handles database operations for recognitions
type RecognitionRepository struct {
	db *gorm.DB
}

// NewRecognitionRepository creates a new recognition repository
func NewRecognitionRepository(db *gorm.DB) *RecognitionRepository {
	return &RecognitionRepository{db: db}
}

// Create creates a new recognition
func (r *RecognitionRepository) Create(recognition *models.Recognition) error {
	return r.db.Create(recognition).Error
}

// GetByID retrieves a recognition by ID
func (r *RecognitionRepository) GetByID(id uuid.UUID) (*models.Recognition, error) {
	var recognition models.Recognition
	err := r.db.Preload("FromUser").Preload("ToUser").First(&recognition, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recognition, nil
}

// GetAll retrieves recognitions with pagination, newest first
func (r *RecognitionRepository) GetAll(publicOnly bool, limit, offset int) ([]models.Recognition, int64, error) {
	var recognitions []models.Recognition
	var total int64

	query := r.db.Model(&models.Recognition{})
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("FromUser").Preload("ToUser").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&recognitions).Error
	if err != nil {
		return nil, 0, err
	}

	return recognitions, total, nil
}

// GetByToUserID retrieves the most recent recognitions received by a user
func (r *RecognitionRepository) GetByToUserID(toUserID uuid.UUID, limit int) ([]models.Recognition, error) {
	var recognitions []models.Recognition
	query := r.db.Preload("FromUser").Where("to_user_id = ?", toUserID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recognitions).Error
	if err != nil {
		return nil, err
	}
	return recognitions, nil
}

// GetLeaderboard returns the top receivers of public recognitions
func (r *RecognitionRepository) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.Model(&models.Recognition{}).
		Select("to_user_id AS user_id, COUNT(*) AS count").
		Where("is_public = ?", true).
		Group("to_user_id").
		Order("count DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete deletes a recognition
func (r *RecognitionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Recognition{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
