package models

import (
	"encoding/json"
	"time"
)

// WebhookConfig maps one internal LMS event type to an external target URL.
// RetryCount and TimeoutSeconds are enforced by the dispatcher when the
// configuration is tested; real delivery lives in the external workflow engine.
type WebhookConfig struct {
	BaseModel
	Name            string           `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	EventType       WebhookEventType `json:"event_type" gorm:"size:50;not null;index" validate:"required"`
	TargetURL       string           `json:"target_url" gorm:"size:500;not null" validate:"required,url,max=500"`
	RetryCount      int              `json:"retry_count" gorm:"not null;default:3" validate:"gte=0,lte=10"`
	TimeoutSeconds  int              `json:"timeout_seconds" gorm:"not null;default:30" validate:"gte=1,lte=300"`
	Headers         json.RawMessage  `json:"headers,omitempty" gorm:"type:jsonb"`
	IsActive        bool             `json:"is_active" gorm:"not null;default:true"`
	LastTriggeredAt *time.Time       `json:"last_triggered_at,omitempty"`
}

// TableName returns the table name for WebhookConfig
func (WebhookConfig) TableName() string {
	return "webhook_configs"
}

// HeaderMap parses the stored custom headers. A nil/empty blob yields an
// empty map; malformed JSON is rejected at the service layer before persist.
func (w *WebhookConfig) HeaderMap() (map[string]string, error) {
	headers := make(map[string]string)
	if len(w.Headers) == 0 {
		return headers, nil
	}
	if err := json.Unmarshal(w.Headers, &headers); err != nil {
		return nil, err
	}
	return headers, nil
}
