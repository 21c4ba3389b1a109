package repository

import (
	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepositoryInterface defines data access for one-on-one meetings
type MeetingRepositoryInterface interface {
	Create(meeting *models.Meeting) error
	GetByID(id uuid.UUID) (*models.Meeting, error)
	GetByParticipant(userID uuid.UUID, status models.MeetingStatus) ([]models.Meeting, error)
	Update(meeting *models.Meeting) error
	Delete(id uuid.UUID) error
}

// MeetingRepository handles database operations for one-on-one meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting
func (r *MeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// GetByID retrieves a meeting by ID
func (r *MeetingRepository) GetByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetByParticipant retrieves meetings where the user is either party,
// soonest first, optionally filtered by status
func (r *MeetingRepository) GetByParticipant(userID uuid.UUID, status models.MeetingStatus) ([]models.Meeting, error) {
	var meetings []models.Meeting
	query := r.db.Where("manager_id = ? OR employee_id = ?", userID, userID).Order("scheduled_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// Update updates a meeting
func (r *MeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

// Delete deletes a meeting
func (r *MeetingRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Meeting{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
