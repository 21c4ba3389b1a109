package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepositoryInterface defines data access for teams
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll(activeOnly bool) ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetChildren(parentID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams in creation order. Insertion order among
// siblings is what the hierarchy view preserves.
func (r *TeamRepository) GetAll(activeOnly bool) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Order("created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetWithMembers retrieves a team with all its members preloaded
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetChildren retrieves the direct child teams of a parent
func (r *TeamRepository) GetChildren(parentID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("parent_team_id = ?", parentID).Order("created_at ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team. Fails with a FK violation while child teams or
// members still reference it.
func (r *TeamRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
