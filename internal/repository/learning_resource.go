package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningResourceRepositoryInterface defines data access for learning resources
type LearningResourceRepositoryInterface interface {
	Create(resource *models.LearningResource) error
	GetByID(id uuid.UUID) (*models.LearningResource, error)
	GetAll(resourceType models.ResourceType, competencyID *uuid.UUID) ([]models.LearningResource, error)
	Update(resource *models.LearningResource) error
	Delete(id uuid.UUID) error
}

// LearningResourceRepository handles database operations for learning resources
type LearningResourceRepository struct {
	db *gorm.DB
}

// NewLearningResourceRepository creates a new learning resource repository
func NewLearningResourceRepository(db *gorm.DB) *LearningResourceRepository {
	return &LearningResourceRepository{db: db}
}

// Create creates a new learning resource
func (r *LearningResourceRepository) Create(resource *models.LearningResource) error {
	return r.db.Create(resource).Error
}

// GetByID retrieves a learning resource by ID
func (r *LearningResourceRepository) GetByID(id uuid.UUID) (*models.LearningResource, error) {
	var resource models.LearningResource
	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetAll retrieves the resource catalog, optionally filtered by type and
// associated competency
func (r *LearningResourceRepository) GetAll(resourceType models.ResourceType, competencyID *uuid.UUID) ([]models.LearningResource, error) {
	var resources []models.LearningResource
	query := r.db.Order("title ASC")
	if resourceType != "" {
		query = query.Where("type = ?", resourceType)
	}
	if competencyID != nil {
		query = query.Where("competency_id = ?", *competencyID)
	}
	err := query.Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Update updates a learning resource
func (r *LearningResourceRepository) Update(resource *models.LearningResource) error {
	return r.db.Save(resource).Error
}

// Delete deletes a learning resource
func (r *LearningResourceRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.LearningResource{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
