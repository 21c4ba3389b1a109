package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DevelopmentPlanRepositoryInterface defines data access for development plans
type DevelopmentPlanRepositoryInterface interface {
	Create(plan *models.DevelopmentPlan) error
	GetByID(id uuid.UUID) (*models.DevelopmentPlan, error)
	GetByUserID(userID uuid.UUID) ([]models.DevelopmentPlan, error)
	Update(plan *models.DevelopmentPlan) error
	Delete(id uuid.UUID) error
}

// DevelopmentPlanRepository handles database operations for development plans
type DevelopmentPlanRepository struct {
	db *gorm.DB
}

// NewDevelopmentPlanRepository creates a new development plan repository
func NewDevelopmentPlanRepository(db *gorm.DB) *DevelopmentPlanRepository {
	return &DevelopmentPlanRepository{db: db}
}

// Create creates a new development plan
func (r *DevelopmentPlanRepository) Create(plan *models.DevelopmentPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a development plan by ID
func (r *DevelopmentPlanRepository) GetByID(id uuid.UUID) (*models.DevelopmentPlan, error) {
	var plan models.DevelopmentPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserID retrieves a user's development plans with linked competencies
func (r *DevelopmentPlanRepository) GetByUserID(userID uuid.UUID) ([]models.DevelopmentPlan, error) {
	var plans []models.DevelopmentPlan
	err := r.db.Preload("Competency").Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update updates a development plan
func (r *DevelopmentPlanRepository) Update(plan *models.DevelopmentPlan) error {
	return r.db.Save(plan).Error
}

// Delete deletes a development plan
func (r *DevelopmentPlanRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.DevelopmentPlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
