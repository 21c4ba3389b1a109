package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalRepositoryInterface defines data access for goals
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByUserID(userID uuid.UUID, activeOnly bool) ([]models.Goal, error)
	GetAll(activeOnly bool) ([]models.Goal, error)
	GetByTeamObjectiveID(teamObjectiveID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
}

// GoalRepository handles database operations for goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByUserID retrieves all goals owned by a user, newest first
func (r *GoalRepository) GetByUserID(userID uuid.UUID, activeOnly bool) ([]models.Goal, error) {
	var goals []models.Goal
	query := r.db.Where("user_id = ?", userID).Order("start_date DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// GetAll retrieves all goals, newest first
func (r *GoalRepository) GetAll(activeOnly bool) ([]models.Goal, error) {
	var goals []models.Goal
	query := r.db.Order("start_date DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// GetByTeamObjectiveID retrieves goals aligned to a team objective
func (r *GoalRepository) GetByTeamObjectiveID(teamObjectiveID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Where("team_objective_id = ?", teamObjectiveID).Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// Update updates a goal
func (r *GoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// Delete deletes a goal. Check-ins cascade.
func (r *GoalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Goal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
