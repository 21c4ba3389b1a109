package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/logger"

	"github.com/google/uuid"
)

// Event is the event-type-tagged payload POSTed to a configured target.
// Shapes are named structs rather than open-ended maps.
type Event struct {
	ID        uuid.UUID               `json:"id"`
	Type      models.WebhookEventType `json:"type"`
	Test      bool                    `json:"test"`
	Timestamp time.Time               `json:"timestamp"`
	Data      EventData               `json:"data"`
}

// EventData carries the subject of the event.
type EventData struct {
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	ResourceID   *uuid.UUID `json:"resource_id,omitempty"`
	ResourceName string     `json:"resource_name,omitempty"`
}

// Dispatcher performs fire-and-forget outbound HTTP deliveries. No queue,
// no ordering guarantee; retry_count and timeout_seconds come from the
// configuration row being triggered.
type Dispatcher struct {
	log *logger.Logger

	// newClient exists so tests can stub transport construction.
	newClient func(timeout time.Duration) *http.Client
}

// NewDispatcher creates a dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		log: logger.New(),
		newClient: func(timeout time.Duration) *http.Client {
			return &http.Client{Timeout: timeout}
		},
	}
}

// NewTestEvent builds a synthetic event of the configured type, used by the
// "test" action on a webhook configuration.
func NewTestEvent(eventType models.WebhookEventType) Event {
	return Event{
		ID:        uuid.New(),
		Type:      eventType,
		Test:      true,
		Timestamp: time.Now().UTC(),
		Data:      EventData{ResourceName: "test-delivery"},
	}
}

// Dispatch POSTs the event to the configuration's target URL with its custom
// headers, retrying up to RetryCount extra attempts with a small backoff.
// Any 2xx response counts as delivered.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg *models.WebhookConfig, event Event) error {
	headers, err := cfg.HeaderMap()
	if err != nil {
		return fmt.Errorf("parse custom headers: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := d.newClient(timeout)

	attempts := cfg.RetryCount + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = d.deliver(ctx, client, cfg.TargetURL, headers, body)
		if lastErr == nil {
			d.log.WithFields(map[string]interface{}{
				"webhook": cfg.Name,
				"event":   event.Type,
				"attempt": attempt,
			}).Info("webhook delivered")
			return nil
		}
		d.log.WithError(lastErr).WithFields(map[string]interface{}{
			"webhook": cfg.Name,
			"attempt": attempt,
		}).Warn("webhook delivery failed")
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}
	return fmt.Errorf("webhook delivery failed after %d attempts: %w", attempts, lastErr)
}

func (d *Dispatcher) deliver(ctx context.Context, client *http.Client, url string, headers map[string]string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("target responded with status %d", resp.StatusCode)
	}
	return nil
}
