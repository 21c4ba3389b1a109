package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompetencyRepositoryInterface defines data access for the competency
// catalog and per-user competency levels
type CompetencyRepositoryInterface interface {
	Create(competency *models.Competency) error
	GetByID(id uuid.UUID) (*models.Competency, error)
	GetAll(category string) ([]models.Competency, error)
	Update(competency *models.Competency) error
	Delete(id uuid.UUID) error
	CreateUserCompetency(uc *models.UserCompetency) error
	GetUserCompetencyByID(id uuid.UUID) (*models.UserCompetency, error)
	GetUserCompetencies(userID uuid.UUID) ([]models.UserCompetency, error)
	UpdateUserCompetency(uc *models.UserCompetency) error
	DeleteUserCompetency(id uuid.UUID) error
}

// CompetencyRepository handles database operations for competencies
type CompetencyRepository struct {
	db *gorm.DB
}

// NewCompetencyRepository creates a new competency repository
func NewCompetencyRepository(db *gorm.DB) *CompetencyRepository {
	return &CompetencyRepository{db: db}
}

// Create creates a new competency catalog entry
func (r *CompetencyRepository) Create(competency *models.Competency) error {
	return r.db.Create(competency).Error
}

// GetByID retrieves a competency by ID
func (r *CompetencyRepository) GetByID(id uuid.UUID) (*models.Competency, error) {
	var competency models.Competency
	err := r.db.First(&competency, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// GetAll retrieves the competency catalog, optionally filtered by category
func (r *CompetencyRepository) GetAll(category string) ([]models.Competency, error) {
	var competencies []models.Competency
	query := r.db.Order("category ASC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&competencies).Error
	if err != nil {
		return nil, err
	}
	return competencies, nil
}

// Update updates a competency
func (r *CompetencyRepository) Update(competency *models.Competency) error {
	return r.db.Save(competency).Error
}

// Delete deletes a competency. Fails with a FK violation while user
// competencies, plans or resources still reference it.
func (r *CompetencyRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Competency{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateUserCompetency creates a per-user competency level pair
func (r *CompetencyRepository) CreateUserCompetency(uc *models.UserCompetency) error {
	return r.db.Create(uc).Error
}

// GetUserCompetencyByID retrieves a user competency by ID
func (r *CompetencyRepository) GetUserCompetencyByID(id uuid.UUID) (*models.UserCompetency, error) {
	var uc models.UserCompetency
	err := r.db.First(&uc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

// GetUserCompetencies retrieves a user's competency profile with the catalog
// entries preloaded
func (r *CompetencyRepository) GetUserCompetencies(userID uuid.UUID) ([]models.UserCompetency, error) {
	var ucs []models.UserCompetency
	err := r.db.Preload("Competency").Where("user_id = ?", userID).Find(&ucs).Error
	if err != nil {
		return nil, err
	}
	return ucs, nil
}

// UpdateUserCompetency updates a user competency
func (r *CompetencyRepository) UpdateUserCompetency(uc *models.UserCompetency) error {
	return r.db.Save(uc).Error
}

// DeleteUserCompetency deletes a user competency
func (r *CompetencyRepository) DeleteUserCompetency(id uuid.UUID) error {
	result := r.db.Delete(&models.UserCompetency{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
