package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/mocks"
	"peakform-backend/internal/service"
	"peakform-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// WebhookServiceTestSuite defines the test suite for WebhookService
type WebhookServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockWebhookConfigRepositoryInterface
	svc      *service.WebhookService
}

// SetupTest sets up the test suite
func (suite *WebhookServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockWebhookConfigRepositoryInterface(suite.ctrl)
	suite.svc = service.NewWebhookService(suite.mockRepo, webhook.NewDispatcher(), cache.New(nil), validator.New())
}

// TearDownTest cleans up after each test
func (suite *WebhookServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WebhookServiceTestSuite) validRequest() *service.WebhookConfigRequest {
	return &service.WebhookConfigRequest{
		Name:           "Course completion hook",
		EventType:      models.EventCourseCompleted,
		TargetURL:      "https://hooks.test.com/lms",
		RetryCount:     3,
		TimeoutSeconds: 30,
	}
}

// TestCreateWebhook tests creating an active configuration
func (suite *WebhookServiceTestSuite) TestCreateWebhook() {
	req := suite.validRequest()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.WebhookConfig) error {
		suite.True(c.IsActive)
		suite.Equal(models.EventCourseCompleted, c.EventType)
		return nil
	})

	config, err := suite.svc.Create(context.Background(), req)
	suite.NoError(err)
	suite.NotNil(config)
}

// TestCreateWebhookInvalidEventType tests the event catalog check
func (suite *WebhookServiceTestSuite) TestCreateWebhookInvalidEventType() {
	req := suite.validRequest()
	req.EventType = models.WebhookEventType("course.started")

	config, err := suite.svc.Create(context.Background(), req)
	suite.Nil(config)
	suite.ErrorIs(err, apperrors.ErrInvalidEventType)
}

// TestCreateWebhookInvalidHeaders tests header shape validation
func (suite *WebhookServiceTestSuite) TestCreateWebhookInvalidHeaders() {
	req := suite.validRequest()
	req.Headers = json.RawMessage(`["not","an","object"]`)

	config, err := suite.svc.Create(context.Background(), req)
	suite.Nil(config)
	suite.ErrorIs(err, apperrors.ErrInvalidWebhookHeaders)
}

// TestToggleWebhook tests flipping the active flag
func (suite *WebhookServiceTestSuite) TestToggleWebhook() {
	id := uuid.New()
	existing := &models.WebhookConfig{Name: "hook", EventType: models.EventQuizPassed, IsActive: true}
	existing.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().SetActive(id, false).Return(nil)

	config, err := suite.svc.Toggle(context.Background(), id)
	suite.NoError(err)
	suite.False(config.IsActive)
}

// TestTestInactiveWebhook tests that test delivery requires an active config
func (suite *WebhookServiceTestSuite) TestTestInactiveWebhook() {
	id := uuid.New()
	existing := &models.WebhookConfig{Name: "hook", EventType: models.EventQuizPassed, IsActive: false}
	existing.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	result, err := suite.svc.Test(context.Background(), id)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInactiveWebhook)
}

// TestTestWebhookDelivers tests a successful synthetic delivery
func (suite *WebhookServiceTestSuite) TestTestWebhookDelivers() {
	var received webhook.Event
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.NoError(json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	id := uuid.New()
	existing := &models.WebhookConfig{
		Name:           "hook",
		EventType:      models.EventBadgeAwarded,
		TargetURL:      server.URL,
		RetryCount:     0,
		TimeoutSeconds: 5,
		IsActive:       true,
	}
	existing.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().TouchLastTriggered(id, gomock.Any()).Return(nil)

	result, err := suite.svc.Test(context.Background(), id)
	suite.NoError(err)
	suite.True(result.Delivered)
	suite.Empty(result.Error)
	suite.True(received.Test)
	suite.Equal(models.EventBadgeAwarded, received.Type)
}

// TestTestWebhookReportsDeliveryFailure tests that a failed delivery is a
// result, not an error
func (suite *WebhookServiceTestSuite) TestTestWebhookReportsDeliveryFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	id := uuid.New()
	existing := &models.WebhookConfig{
		Name:           "hook",
		EventType:      models.EventTrainingDue,
		TargetURL:      server.URL,
		RetryCount:     0,
		TimeoutSeconds: 5,
		IsActive:       true,
	}
	existing.ID = id

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)

	result, err := suite.svc.Test(context.Background(), id)
	suite.NoError(err)
	suite.False(result.Delivered)
	suite.NotEmpty(result.Error)
}

// TestWebhookNotFound tests missing configuration mapping
func (suite *WebhookServiceTestSuite) TestWebhookNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	config, err := suite.svc.GetByID(context.Background(), id)
	suite.Nil(config)
	suite.ErrorIs(err, apperrors.ErrWebhookConfigNotFound)
}

// TestWebhookServiceTestSuite runs the test suite
func TestWebhookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookServiceTestSuite))
}
