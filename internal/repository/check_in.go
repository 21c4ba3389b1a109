package repository

import (
	"time"

	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckInRepositoryInterface defines data access for weekly check-ins
type CheckInRepositoryInterface interface {
	CreateWithGoalSync(checkIn *models.CheckIn, goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.CheckIn, error)
	GetByGoalID(goalID uuid.UUID) ([]models.CheckIn, error)
	GetByUserID(userID uuid.UUID, limit int) ([]models.CheckIn, error)
	GetLatestForGoal(goalID uuid.UUID) (*models.CheckIn, error)
	GetSince(weekStart time.Time) ([]models.CheckIn, error)
}

// CheckInRepository handles database operations for weekly check-ins
type CheckInRepository struct {
	db *gorm.DB
}

// NewCheckInRepository creates a new check-in repository
func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// CreateWithGoalSync inserts the check-in row and updates the parent goal's
// current value and confidence in one transaction. The client assumes the
// goal reflects the latest check-in after invalidation.
func (r *CheckInRepository) CreateWithGoalSync(checkIn *models.CheckIn, goal *models.Goal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkIn).Error; err != nil {
			return err
		}
		return tx.Model(&models.Goal{}).
			Where("id = ?", goal.ID).
			Updates(map[string]interface{}{
				"current_value": goal.CurrentValue,
				"confidence":    goal.Confidence,
			}).Error
	})
}

// GetByID retrieves a check-in by ID
func (r *CheckInRepository) GetByID(id uuid.UUID) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.First(&checkIn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// GetByGoalID retrieves all check-ins for a goal, most recent week first
func (r *CheckInRepository) GetByGoalID(goalID uuid.UUID) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.Where("goal_id = ?", goalID).
		Order("week_start DESC, created_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

// GetByUserID retrieves a user's recent check-ins across all goals
func (r *CheckInRepository) GetByUserID(userID uuid.UUID, limit int) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	query := r.db.Where("user_id = ?", userID).Order("week_start DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

// GetSince retrieves all check-ins from the given week boundary onward
func (r *CheckInRepository) GetSince(weekStart time.Time) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.Where("week_start >= ?", weekStart).
		Order("week_start DESC, created_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

// GetLatestForGoal retrieves the most recent check-in for a goal
func (r *CheckInRepository) GetLatestForGoal(goalID uuid.UUID) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := r.db.Where("goal_id = ?", goalID).
		Order("week_start DESC, created_at DESC").
		First(&checkIn).Error
	if err != nil {
		return nil, err
	}
	return &checkIn, nil
}
