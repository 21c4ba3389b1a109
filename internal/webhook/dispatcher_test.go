package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"peakform-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchDeliversOnFirstAttempt(t *testing.T) {
	var calls int32
	var received Event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	cfg := &models.WebhookConfig{
		Name:           "first-attempt",
		TargetURL:      server.URL,
		RetryCount:     3,
		TimeoutSeconds: 5,
	}
	event := NewTestEvent(models.EventCertificateIssued)

	err := NewDispatcher().Dispatch(context.Background(), cfg, event)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, event.ID, received.ID)
	assert.Equal(t, models.EventCertificateIssued, received.Type)
	assert.True(t, received.Test)
}

func TestDispatchRetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &models.WebhookConfig{
		Name:           "retry-once",
		TargetURL:      server.URL,
		RetryCount:     1,
		TimeoutSeconds: 5,
	}

	err := NewDispatcher().Dispatch(context.Background(), cfg, NewTestEvent(models.EventQuizPassed))
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDispatchForwardsCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "peakform", r.Header.Get("X-Source"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &models.WebhookConfig{
		Name:           "with-headers",
		TargetURL:      server.URL,
		TimeoutSeconds: 5,
		Headers:        json.RawMessage(`{"Authorization":"Bearer secret-token","X-Source":"peakform"}`),
	}

	err := NewDispatcher().Dispatch(context.Background(), cfg, NewTestEvent(models.EventBadgeAwarded))
	require.NoError(t, err)
}

func TestDispatchFailsAfterExhaustingAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &models.WebhookConfig{
		Name:           "always-failing",
		TargetURL:      server.URL,
		RetryCount:     0,
		TimeoutSeconds: 5,
	}

	err := NewDispatcher().Dispatch(context.Background(), cfg, NewTestEvent(models.EventTrainingOverdue))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 attempts")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDispatchRejectsMalformedHeaders(t *testing.T) {
	cfg := &models.WebhookConfig{
		Name:      "bad-headers",
		TargetURL: "http://localhost:1",
		Headers:   json.RawMessage(`["nope"]`),
	}

	err := NewDispatcher().Dispatch(context.Background(), cfg, NewTestEvent(models.EventQuizFailed))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse custom headers")
}

func TestDispatchStopsOnCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &models.WebhookConfig{
		Name:           "cancelled",
		TargetURL:      server.URL,
		RetryCount:     5,
		TimeoutSeconds: 5,
	}

	err := NewDispatcher().Dispatch(ctx, cfg, NewTestEvent(models.EventEnrollmentCreated))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewTestEventShape(t *testing.T) {
	event := NewTestEvent(models.EventCourseCompleted)
	assert.True(t, event.Test)
	assert.Equal(t, models.EventCourseCompleted, event.Type)
	assert.NotZero(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}
