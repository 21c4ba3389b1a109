package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"peakform-backend/internal/api/handlers"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/mocks"
	"peakform-backend/internal/service"
	"peakform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WebhookHandlerTestSuite defines the test suite for webhook handlers
type WebhookHandlerTestSuite struct {
	suite.Suite
	httpSuite   *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockWebhookServiceInterface
}

// SetupTest sets up the test suite
func (suite *WebhookHandlerTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockWebhookServiceInterface(suite.ctrl)

	handler := handlers.NewWebhookHandler(suite.mockService)
	webhooks := suite.httpSuite.Router.Group("/api/v1/webhooks")
	{
		webhooks.POST("", handler.CreateWebhook)
		webhooks.GET("", handler.ListWebhooks)
		webhooks.GET("/:id", handler.GetWebhook)
		webhooks.PUT("/:id", handler.UpdateWebhook)
		webhooks.PATCH("/:id/toggle", handler.ToggleWebhook)
		webhooks.POST("/:id/test", handler.TestWebhook)
		webhooks.DELETE("/:id", handler.DeleteWebhook)
	}
}

// TearDownTest cleans up after each test
func (suite *WebhookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateWebhook tests successful configuration creation
func (suite *WebhookHandlerTestSuite) TestCreateWebhook() {
	created := &models.WebhookConfig{
		Name:           "Badge notifier",
		EventType:      models.EventBadgeAwarded,
		TargetURL:      "https://hooks.test.com/badges",
		RetryCount:     3,
		TimeoutSeconds: 30,
		IsActive:       true,
	}
	created.ID = uuid.New()

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(created, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/webhooks", map[string]interface{}{
		"name":            "Badge notifier",
		"event_type":      "badge.awarded",
		"target_url":      "https://hooks.test.com/badges",
		"retry_count":     3,
		"timeout_seconds": 30,
	})

	var response models.WebhookConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(created.ID, response.ID)
	suite.True(response.IsActive)
}

// TestCreateWebhookInvalidEventType tests event catalog rejection as 400
func (suite *WebhookHandlerTestSuite) TestCreateWebhookInvalidEventType() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidEventType)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/webhooks", map[string]interface{}{
		"name":            "Bad hook",
		"event_type":      "course.started",
		"target_url":      "https://hooks.test.com/bad",
		"timeout_seconds": 30,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid webhook event type")
}

// TestToggleWebhook tests flipping the active flag
func (suite *WebhookHandlerTestSuite) TestToggleWebhook() {
	id := uuid.New()
	toggled := &models.WebhookConfig{Name: "hook", EventType: models.EventQuizPassed, IsActive: false}
	toggled.ID = id

	suite.mockService.EXPECT().
		Toggle(gomock.Any(), id).
		Return(toggled, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/webhooks/"+id.String()+"/toggle", nil)

	var response models.WebhookConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.False(response.IsActive)
}

// TestTestWebhook tests a successful test delivery
func (suite *WebhookHandlerTestSuite) TestTestWebhook() {
	id := uuid.New()
	result := &service.TestResult{WebhookID: id, Delivered: true, TriggeredAt: time.Now()}

	suite.mockService.EXPECT().
		Test(gomock.Any(), id).
		Return(result, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/webhooks/"+id.String()+"/test", nil)

	var response service.TestResult
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.Delivered)
	suite.Equal(id, response.WebhookID)
}

// TestTestWebhookInactive tests that inactive configurations are a 400
func (suite *WebhookHandlerTestSuite) TestTestWebhookInactive() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Test(gomock.Any(), id).
		Return(nil, apperrors.ErrInactiveWebhook)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/webhooks/"+id.String()+"/test", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "inactive")
}

// TestGetWebhookNotFound tests not found mapping
func (suite *WebhookHandlerTestSuite) TestGetWebhookNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrWebhookConfigNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/webhooks/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestListWebhooksByEventType tests the event type filter
func (suite *WebhookHandlerTestSuite) TestListWebhooksByEventType() {
	configs := []models.WebhookConfig{
		{Name: "hook-a", EventType: models.EventCourseCompleted, IsActive: true},
	}

	suite.mockService.EXPECT().
		List(gomock.Any(), models.EventCourseCompleted).
		Return(configs, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/webhooks?event_type=course.completed", nil)

	var response []models.WebhookConfig
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

// TestDeleteWebhook tests deletion
func (suite *WebhookHandlerTestSuite) TestDeleteWebhook() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/webhooks/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestWebhookHandlerTestSuite runs the test suite
func TestWebhookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}
