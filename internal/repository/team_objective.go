package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamObjectiveRepositoryInterface defines data access for team objectives
type TeamObjectiveRepositoryInterface interface {
	Create(objective *models.TeamObjective) error
	GetByID(id uuid.UUID) (*models.TeamObjective, error)
	GetWithKeyResults(id uuid.UUID) (*models.TeamObjective, error)
	GetByTeamID(teamID uuid.UUID, activeOnly bool) ([]models.TeamObjective, error)
	GetAll(activeOnly bool) ([]models.TeamObjective, error)
	Update(objective *models.TeamObjective) error
	Delete(id uuid.UUID) error
	CreateKeyResult(kr *models.TeamKeyResult) error
	GetKeyResultByID(id uuid.UUID) (*models.TeamKeyResult, error)
	UpdateKeyResult(kr *models.TeamKeyResult) error
	DeleteKeyResult(id uuid.UUID) error
}

// TeamObjectiveRepository handles database operations for team objectives
// and their key results
type TeamObjectiveRepository struct {
	db *gorm.DB
}

// NewTeamObjectiveRepository creates a new team objective repository
func NewTeamObjectiveRepository(db *gorm.DB) *TeamObjectiveRepository {
	return &TeamObjectiveRepository{db: db}
}

// Create creates a new team objective
func (r *TeamObjectiveRepository) Create(objective *models.TeamObjective) error {
	return r.db.Create(objective).Error
}

// GetByID retrieves a team objective by ID
func (r *TeamObjectiveRepository) GetByID(id uuid.UUID) (*models.TeamObjective, error) {
	var objective models.TeamObjective
	err := r.db.First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetWithKeyResults retrieves a team objective with key results preloaded
func (r *TeamObjectiveRepository) GetWithKeyResults(id uuid.UUID) (*models.TeamObjective, error) {
	var objective models.TeamObjective
	err := r.db.Preload("KeyResults").First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetByTeamID retrieves all objectives for a team with key results
func (r *TeamObjectiveRepository) GetByTeamID(teamID uuid.UUID, activeOnly bool) ([]models.TeamObjective, error) {
	var objectives []models.TeamObjective
	query := r.db.Preload("KeyResults").Where("team_id = ?", teamID).Order("start_date DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&objectives).Error
	if err != nil {
		return nil, err
	}
	return objectives, nil
}

// GetAll retrieves all team objectives with key results, newest first
func (r *TeamObjectiveRepository) GetAll(activeOnly bool) ([]models.TeamObjective, error) {
	var objectives []models.TeamObjective
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

// Update updates a team objective
func (r *TeamObjectiveRepository) Update(objective *models.TeamObjective) error {
	return r.db.Save(objective).Error
}

// Delete deletes a team objective. Key results cascade.
func (r *TeamObjectiveRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.TeamObjective{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateKeyResult creates a key result under a team objective
func (r *TeamObjectiveRepository) CreateKeyResult(kr *models.TeamKeyResult) error {
	return r.db.Create(kr).Error
}

// GetKeyResultByID retrieves a team key result by ID
func (r *TeamObjectiveRepository) GetKeyResultByID(id uuid.UUID) (*models.TeamKeyResult, error) {
	var kr models.TeamKeyResult
	err := r.db.First(&kr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kr, nil
}

// UpdateKeyResult updates a team key result
func (r *TeamObjectiveRepository) UpdateKeyResult(kr *models.TeamKeyResult) error {
	return r.db.Save(kr).Error
}

// DeleteKeyResult deletes a team key result
func (r *TeamObjectiveRepository) DeleteKeyResult(id uuid.UUID) error {
	result := r.db.Delete(&models.TeamKeyResult{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
