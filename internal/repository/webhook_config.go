package repository

import (
	"time"

	"peakform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookConfigRepositoryInterface defines data access for webhook configurations
type WebhookConfigRepositoryInterface interface {
	Create(config *models.WebhookConfig) error
	GetByID(id uuid.UUID) (*models.WebhookConfig, error)
	GetAll(eventType models.WebhookEventType) ([]models.WebhookConfig, error)
	GetActiveByEventType(eventType models.WebhookEventType) ([]models.WebhookConfig, error)
	Update(config *models.WebhookConfig) error
	SetActive(id uuid.UUID, active bool) error
	TouchLastTriggered(id uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// WebhookConfigRepository handles database operations for webhook configurations
type WebhookConfigRepository struct {
	db *gorm.DB
}

// NewWebhookConfigRepository creates a new webhook configuration repository
func NewWebhookConfigRepository(db *gorm.DB) *WebhookConfigRepository {
	return &WebhookConfigRepository{db: db}
}

// Create creates a new webhook configuration
func (r *WebhookConfigRepository) Create(config *models.WebhookConfig) error {
	return r.db.Create(config).Error
}

// GetByID retrieves a webhook configuration by ID
func (r *WebhookConfigRepository) GetByID(id uuid.UUID) (*models.WebhookConfig, error) {
	var config models.WebhookConfig
	err := r.db.First(&config, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetAll retrieves all webhook configurations, optionally filtered by event type
func (r *WebhookConfigRepository) GetAll(eventType models.WebhookEventType) ([]models.WebhookConfig, error) {
	var configs []models.WebhookConfig
	query := r.db.Order("name ASC")
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}
	err := query.Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// GetActiveByEventType retrieves active configurations subscribed to an event type
func (r *WebhookConfigRepository) GetActiveByEventType(eventType models.WebhookEventType) ([]models.WebhookConfig, error) {
	var configs []models.WebhookConfig
	err := r.db.Where("event_type = ? AND is_active = ?", eventType, true).Find(&configs).Error
	if err != nil {
		return nil, err
	}
	return configs, nil
}

// Update updates a webhook configuration
func (r *WebhookConfigRepository) Update(config *models.WebhookConfig) error {
	return r.db.Save(config).Error
}

// SetActive flips the active flag without touching other fields
func (r *WebhookConfigRepository) SetActive(id uuid.UUID, active bool) error {
	result := r.db.Model(&models.WebhookConfig{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchLastTriggered records when the configuration last fired
func (r *WebhookConfigRepository) TouchLastTriggered(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.WebhookConfig{}).Where("id = ?", id).Update("last_triggered_at", at).Error
}

// Delete deletes a webhook configuration
func (r *WebhookConfigRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.WebhookConfig{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
