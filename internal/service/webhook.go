package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/repository"
	"peakform-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookService handles business logic for webhook configurations and
// their test delivery
type WebhookService struct {
	repo       repository.WebhookConfigRepositoryInterface
	dispatcher *webhook.Dispatcher
	cache      *cache.QueryCache
	validator  *validator.Validate
}

// NewWebhookService creates a new webhook service
func NewWebhookService(repo repository.WebhookConfigRepositoryInterface, dispatcher *webhook.Dispatcher, qc *cache.QueryCache, validator *validator.Validate) *WebhookService {
	return &WebhookService{
		repo:       repo,
		dispatcher: dispatcher,
		cache:      qc,
		validator:  validator,
	}
}

// WebhookConfigRequest represents the request to create or update a
// webhook configuration
type WebhookConfigRequest struct {
	Name           string                  `json:"name" validate:"required,min=1,max=100"`
	EventType      models.WebhookEventType `json:"event_type" validate:"required"`
	TargetURL      string                  `json:"target_url" validate:"required,url,max=500"`
	RetryCount     int                     `json:"retry_count" validate:"gte=0,lte=10"`
	TimeoutSeconds int                     `json:"timeout_seconds" validate:"gte=1,lte=300"`
	Headers        json.RawMessage         `json:"headers,omitempty"`
	IsActive       *bool                   `json:"is_active,omitempty"`
}

// TestResult reports the outcome of a test delivery
type TestResult struct {
	WebhookID   uuid.UUID `json:"webhook_id"`
	Delivered   bool      `json:"delivered"`
	Error       string    `json:"error,omitempty"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// Create creates a new webhook configuration
func (s *WebhookService) Create(ctx context.Context, req *WebhookConfigRequest) (*models.WebhookConfig, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	config := &models.WebhookConfig{
		Name:           req.Name,
		EventType:      req.EventType,
		TargetURL:      req.TargetURL,
		RetryCount:     req.RetryCount,
		TimeoutSeconds: req.TimeoutSeconds,
		Headers:        req.Headers,
		IsActive:       isActive,
	}
	if err := s.repo.Create(config); err != nil {
		return nil, fmt.Errorf("failed to create webhook configuration: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixWebhooks)
	return config, nil
}

// GetByID retrieves a webhook configuration by ID
func (s *WebhookService) GetByID(ctx context.Context, id uuid.UUID) (*models.WebhookConfig, error) {
	config, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookConfigNotFound
		}
		return nil, fmt.Errorf("failed to get webhook configuration: %w", err)
	}
	return config, nil
}

// List retrieves webhook configurations, optionally filtered by event type
func (s *WebhookService) List(ctx context.Context, eventType models.WebhookEventType) ([]models.WebhookConfig, error) {
	if eventType != "" && !eventType.IsValid() {
		return nil, apperrors.ErrInvalidEventType
	}

	cacheKey := fmt.Sprintf("list:%s", eventType)
	var cached []models.WebhookConfig
	if s.cache.Get(ctx, cache.PrefixWebhooks, cacheKey, &cached) {
		return cached, nil
	}

	configs, err := s.repo.GetAll(eventType)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook configurations: %w", err)
	}

	s.cache.Set(ctx, cache.PrefixWebhooks, cacheKey, configs)
	return configs, nil
}

// Update updates a webhook configuration
func (s *WebhookService) Update(ctx context.Context, id uuid.UUID, req *WebhookConfigRequest) (*models.WebhookConfig, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	config, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookConfigNotFound
		}
		return nil, fmt.Errorf("failed to get webhook configuration: %w", err)
	}

	config.Name = req.Name
	config.EventType = req.EventType
	config.TargetURL = req.TargetURL
	config.RetryCount = req.RetryCount
	config.TimeoutSeconds = req.TimeoutSeconds
	config.Headers = req.Headers
	if req.IsActive != nil {
		config.IsActive = *req.IsActive
	}

	if err := s.repo.Update(config); err != nil {
		return nil, fmt.Errorf("failed to update webhook configuration: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixWebhooks)
	return config, nil
}

// Toggle flips a webhook configuration's active flag
func (s *WebhookService) Toggle(ctx context.Context, id uuid.UUID) (*models.WebhookConfig, error) {
	config, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookConfigNotFound
		}
		return nil, fmt.Errorf("failed to get webhook configuration: %w", err)
	}

	config.IsActive = !config.IsActive
	if err := s.repo.SetActive(id, config.IsActive); err != nil {
		return nil, fmt.Errorf("failed to toggle webhook configuration: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixWebhooks)
	return config, nil
}

// Test sends a synthetic event to the configuration's target URL using its
// retry and timeout settings, and stamps last_triggered_at on success.
func (s *WebhookService) Test(ctx context.Context, id uuid.UUID) (*TestResult, error) {
	config, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWebhookConfigNotFound
		}
		return nil, fmt.Errorf("failed to get webhook configuration: %w", err)
	}
	if !config.IsActive {
		return nil, apperrors.ErrInactiveWebhook
	}

	result := &TestResult{WebhookID: id, TriggeredAt: time.Now()}
	event := webhook.NewTestEvent(config.EventType)
	if err := s.dispatcher.Dispatch(ctx, config, event); err != nil {
		result.Error = err.Error()
		return result, nil
	}

	result.Delivered = true
	if err := s.repo.TouchLastTriggered(id, result.TriggeredAt); err != nil {
		return nil, fmt.Errorf("failed to record trigger time: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixWebhooks)
	return result, nil
}

// Delete deletes a webhook configuration
func (s *WebhookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWebhookConfigNotFound
		}
		return fmt.Errorf("failed to delete webhook configuration: %w", err)
	}

	s.cache.Invalidate(ctx, cache.PrefixWebhooks)
	return nil
}

func (s *WebhookService) validateRequest(req *WebhookConfigRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !req.EventType.IsValid() {
		return apperrors.ErrInvalidEventType
	}
	if len(req.Headers) > 0 {
		headers := make(map[string]string)
		if err := json.Unmarshal(req.Headers, &headers); err != nil {
			return apperrors.ErrInvalidWebhookHeaders
		}
	}
	return nil
}
