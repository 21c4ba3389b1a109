package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyObjectiveRepositoryInterface defines data access for company objectives
type CompanyObjectiveRepositoryInterface interface {
	Create(objective *models.CompanyObjective) error
	GetByID(id uuid.UUID) (*models.CompanyObjective, error)
	GetWithKeyResults(id uuid.UUID) (*models.CompanyObjective, error)
	GetAll(activeOnly bool) ([]models.CompanyObjective, error)
	Update(objective *models.CompanyObjective) error
	Delete(id uuid.UUID) error
	CreateKeyResult(kr *models.KeyResult) error
	GetKeyResultByID(id uuid.UUID) (*models.KeyResult, error)
	UpdateKeyResult(kr *models.KeyResult) error
	DeleteKeyResult(id uuid.UUID) error
}

// CompanyObjectiveRepository handles database operations for company
// objectives and their key results
type CompanyObjectiveRepository struct {
	db *gorm.DB
}

// NewCompanyObjectiveRepository creates a new company objective repository
func NewCompanyObjectiveRepository(db *gorm.DB) *CompanyObjectiveRepository {
	return &CompanyObjectiveRepository{db: db}
}

// Create creates a new company objective
func (r *CompanyObjectiveRepository) Create(objective *models.CompanyObjective) error {
	return r.db.Create(objective).Error
}

// GetByID retrieves a company objective by ID
func (r *CompanyObjectiveRepository) GetByID(id uuid.UUID) (*models.CompanyObjective, error) {
	var objective models.CompanyObjective
	err := r.db.First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetWithKeyResults retrieves a company objective with its key results preloaded
func (r *CompanyObjectiveRepository) GetWithKeyResults(id uuid.UUID) (*models.CompanyObjective, error) {
	var objective models.CompanyObjective
	err := r.db.Preload("KeyResults").First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetAll retrieves all company objectives with key results, newest first
func (r *CompanyObjectiveRepository) GetAll(activeOnly bool) ([]models.CompanyObjective, error) {
	var objectives []models.CompanyObjective
	query := r.db.Preload("KeyResults").Order("start_date DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&objectives).Error
	if err != nil {
		return nil, err
	}
	return objectives, nil
}

// Update updates a company objective
func (r *CompanyObjectiveRepository) Update(objective *models.CompanyObjective) error {
	return r.db.Save(objective).Error
}

// Delete deletes a company objective. Key results cascade.
func (r *CompanyObjectiveRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.CompanyObjective{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateKeyResult creates a key result under an objective
func (r *CompanyObjectiveRepository) CreateKeyResult(kr *models.KeyResult) error {
	return r.db.Create(kr).Error
}

// GetKeyResultByID retrieves a key result by ID
func (r *CompanyObjectiveRepository) GetKeyResultByID(id uuid.UUID) (*models.KeyResult, error) {
	var kr models.KeyResult
	err := r.db.First(&kr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kr, nil
}

// UpdateKeyResult updates a key result
func (r *CompanyObjectiveRepository) UpdateKeyResult(kr *models.KeyResult) error {
	return r.db.Save(kr).Error
}

// DeleteKeyResult deletes a key result
func (r *CompanyObjectiveRepository) DeleteKeyResult(id uuid.UUID) error {
	result := r.db.Delete(&models.KeyResult{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
