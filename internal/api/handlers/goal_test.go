package handlers_test

import (
	"context"
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

// GoalHandlerTestSuite defines the test suite for goal handlers
type GoalHandlerTestSuite struct {
	suite.Suite
	httpSuite   *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockGoalServiceInterface
}

// SetupTest sets up the test suite
func (suite *GoalHandlerTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGoalServiceInterface(suite.ctrl)

	handler := handlers.NewGoalHandler(suite.mockService)
	goals := suite.httpSuite.Router.Group("/api/v1/goals")
	{
		goals.POST("", handler.CreateGoal)
		goals.GET("", handler.ListGoals)
		goals.GET("/:id", handler.GetGoal)
		goals.PUT("/:id", handler.UpdateGoal)
		goals.DELETE("/:id", handler.DeleteGoal)
		goals.POST("/:id/checkins", handler.SubmitCheckIn)
		goals.GET("/:id/checkins", handler.ListCheckIns)
	}
}

// TearDownTest cleans up after each test
func (suite *GoalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GoalHandlerTestSuite) goalResponse(userID uuid.UUID) *service.GoalResponse {
	goal := models.Goal{
		UserID:       userID,
		Title:        "Close 12 deals",
		TargetValue:  12,
		CurrentValue: 6,
		Unit:         "deals",
		StartDate:    time.Now().AddDate(0, -1, 0),
		EndDate:      time.Now().AddDate(0, 2, 0),
		Confidence:   models.ConfidenceOnTrack,
		IsActive:     true,
	}
	goal.ID = uuid.New()
	return &service.GoalResponse{Goal: goal, IsCompleted: false, ProgressPercent: 50}
}

// TestCreateGoal tests successful goal creation
func (suite *GoalHandlerTestSuite) TestCreateGoal() {
	userID := uuid.New()
	created := suite.goalResponse(userID)

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *service.CreateGoalRequest) (*service.GoalResponse, error) {
			suite.Equal(userID, req.UserID)
			suite.Equal("Close 12 deals", req.Title)
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/goals", map[string]interface{}{
		"user_id":      userID.String(),
		"title":        "Close 12 deals",
		"target_value": 12,
		"unit":         "deals",
		"start_date":   "2026-01-01T00:00:00Z",
		"end_date":     "2026-06-30T00:00:00Z",
	})

	var response service.GoalResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(created.ID, response.ID)
	suite.InDelta(50.0, response.ProgressPercent, 0.01)
}

// TestCreateGoalInvalidDateRange tests that a reversed date range is a 400
func (suite *GoalHandlerTestSuite) TestCreateGoalInvalidDateRange() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidDateRange)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/goals", map[string]interface{}{
		"user_id":      uuid.New().String(),
		"title":        "Backwards goal",
		"target_value": 1,
		"start_date":   "2026-06-30T00:00:00Z",
		"end_date":     "2026-01-01T00:00:00Z",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

// TestListGoalsInvalidStatus tests the status filter whitelist
func (suite *GoalHandlerTestSuite) TestListGoalsInvalidStatus() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/goals?status=stalled", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid status")
}

// TestListGoalsByUser tests the user scope filter
func (suite *GoalHandlerTestSuite) TestListGoalsByUser() {
	userID := uuid.New()
	responses := []service.GoalResponse{*suite.goalResponse(userID)}

	suite.mockService.EXPECT().
		List(gomock.Any(), gomock.Any(), service.GoalStatusOpen).
		DoAndReturn(func(ctx context.Context, uid *uuid.UUID, status service.GoalStatus) ([]service.GoalResponse, error) {
			suite.NotNil(uid)
			suite.Equal(userID, *uid)
			return responses, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/goals?user_id="+userID.String()+"&status=open", nil)

	var response []service.GoalResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

// TestListGoalsInvalidUserID tests UUID validation on the query parameter
func (suite *GoalHandlerTestSuite) TestListGoalsInvalidUserID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/goals?user_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid user_id")
}

// TestGetGoalNotFound tests not found mapping
func (suite *GoalHandlerTestSuite) TestGetGoalNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrGoalNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/goals/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestSubmitCheckIn tests check-in submission against a goal
func (suite *GoalHandlerTestSuite) TestSubmitCheckIn() {
	goalID := uuid.New()
	userID := uuid.New()
	checkIn := &models.CheckIn{
		GoalID:     goalID,
		UserID:     userID,
		Progress:   60,
		Confidence: models.ConfidenceAtRisk,
		WeekStart:  models.WeekStartOf(time.Now()),
	}
	checkIn.ID = uuid.New()

	suite.mockService.EXPECT().
		SubmitCheckIn(gomock.Any(), goalID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id uuid.UUID, req *service.SubmitCheckInRequest) (*models.CheckIn, error) {
			suite.Equal(60, req.Progress)
			suite.Equal(models.ConfidenceAtRisk, req.Confidence)
			return checkIn, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/checkins", map[string]interface{}{
		"user_id":    userID.String(),
		"progress":   60,
		"confidence": "amber",
	})

	var response models.CheckIn
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(goalID, response.GoalID)
	suite.Equal(60, response.Progress)
}

// TestSubmitCheckInGoalNotFound tests check-in against a missing goal
func (suite *GoalHandlerTestSuite) TestSubmitCheckInGoalNotFound() {
	goalID := uuid.New()
	suite.mockService.EXPECT().
		SubmitCheckIn(gomock.Any(), goalID, gomock.Any()).
		Return(nil, apperrors.ErrGoalNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/checkins", map[string]interface{}{
		"user_id":    uuid.New().String(),
		"progress":   10,
		"confidence": "red",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestListCheckIns tests listing a goal's check-in history
func (suite *GoalHandlerTestSuite) TestListCheckIns() {
	goalID := uuid.New()
	checkIns := []models.CheckIn{
		{GoalID: goalID, Progress: 40, Confidence: models.ConfidenceOnTrack},
		{GoalID: goalID, Progress: 60, Confidence: models.ConfidenceAtRisk},
	}

	suite.mockService.EXPECT().
		ListCheckIns(gomock.Any(), goalID).
		Return(checkIns, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/goals/"+goalID.String()+"/checkins", nil)

	var response []models.CheckIn
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

// TestDeleteGoal tests soft deletion
func (suite *GoalHandlerTestSuite) TestDeleteGoal() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/goals/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestGoalHandlerTestSuite runs the test suite
func TestGoalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
