package service_test

import (
	"context"
	"testing"
	"time"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/mocks"
	"peakform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GoalServiceTestSuite defines the test suite for GoalService
type GoalServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockGoalRepositoryInterface
	mockCheckInRepo *mocks.MockCheckInRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockTeamObjRepo *mocks.MockTeamObjectiveRepositoryInterface
	mockObjRepo     *mocks.MockCompanyObjectiveRepositoryInterface
	svc             *service.GoalService
}

// SetupTest sets up the test suite
func (suite *GoalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockGoalRepositoryInterface(suite.ctrl)
	suite.mockCheckInRepo = mocks.NewMockCheckInRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamObjRepo = mocks.NewMockTeamObjectiveRepositoryInterface(suite.ctrl)
	suite.mockObjRepo = mocks.NewMockCompanyObjectiveRepositoryInterface(suite.ctrl)
	suite.svc = service.NewGoalService(
		suite.mockRepo,
		suite.mockCheckInRepo,
		suite.mockUserRepo,
		suite.mockTeamObjRepo,
		suite.mockObjRepo,
		cache.New(nil),
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *GoalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GoalServiceTestSuite) validCreateRequest(userID uuid.UUID) *service.CreateGoalRequest {
	now := time.Now()
	return &service.CreateGoalRequest{
		UserID:      userID,
		Title:       "Ship five features",
		TargetValue: 5,
		Unit:        "features",
		StartDate:   now,
		EndDate:     now.AddDate(0, 3, 0),
	}
}

// TestCreateGoal tests successful goal creation with the default confidence
func (suite *GoalServiceTestSuite) TestCreateGoal() {
	userID := uuid.New()
	req := suite.validCreateRequest(userID)

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *models.Goal) error {
		suite.Equal(userID, g.UserID)
		suite.Equal(models.ConfidenceOnTrack, g.Confidence)
		suite.True(g.IsActive)
		return nil
	})

	goal, err := suite.svc.Create(context.Background(), req)
	suite.NoError(err)
	suite.NotNil(goal)
	suite.False(goal.IsCompleted)
	suite.Equal(float64(0), goal.ProgressPercent)
}

// TestCreateGoalInvalidDateRange tests the end-before-start rejection
func (suite *GoalServiceTestSuite) TestCreateGoalInvalidDateRange() {
	req := suite.validCreateRequest(uuid.New())
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	goal, err := suite.svc.Create(context.Background(), req)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

// TestCreateGoalUnknownTeamObjective tests the alignment check
func (suite *GoalServiceTestSuite) TestCreateGoalUnknownTeamObjective() {
	userID := uuid.New()
	teamObjectiveID := uuid.New()
	req := suite.validCreateRequest(userID)
	req.TeamObjectiveID = &teamObjectiveID

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil)
	suite.mockTeamObjRepo.EXPECT().GetByID(teamObjectiveID).Return(nil, gorm.ErrRecordNotFound)

	goal, err := suite.svc.Create(context.Background(), req)
	suite.Nil(goal)
	suite.ErrorIs(err, apperrors.ErrTeamObjectiveNotFound)
}

// TestSubmitCheckIn tests that a check-in derives the goal's current value
// and normalizes the week to Sunday
func (suite *GoalServiceTestSuite) TestSubmitCheckIn() {
	goalID := uuid.New()
	userID := uuid.New()
	goal := &models.Goal{
		UserID:      userID,
		TargetValue: 10,
		Confidence:  models.ConfidenceOnTrack,
	}
	goal.ID = goalID

	req := &service.SubmitCheckInRequest{
		UserID:       userID,
		Progress:     60,
		Confidence:   models.ConfidenceAtRisk,
		Achievements: "Landed the first milestone",
	}

	suite.mockRepo.EXPECT().GetByID(goalID).Return(goal, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(&models.User{}, nil)
	suite.mockCheckInRepo.EXPECT().CreateWithGoalSync(gomock.Any(), gomock.Any()).DoAndReturn(
		func(checkIn *models.CheckIn, g *models.Goal) error {
			suite.Equal(goalID, checkIn.GoalID)
			suite.Equal(60, checkIn.Progress)
			suite.Equal(models.WeekStartOf(time.Now()), checkIn.WeekStart)
			suite.InDelta(6.0, g.CurrentValue, 0.001)
			suite.Equal(models.ConfidenceAtRisk, g.Confidence)
			return nil
		})

	checkIn, err := suite.svc.SubmitCheckIn(context.Background(), goalID, req)
	suite.NoError(err)
	suite.NotNil(checkIn)
}

// TestSubmitCheckInGoalNotFound tests check-in against a missing goal
func (suite *GoalServiceTestSuite) TestSubmitCheckInGoalNotFound() {
	goalID := uuid.New()
	req := &service.SubmitCheckInRequest{
		UserID:     uuid.New(),
		Progress:   50,
		Confidence: models.ConfidenceOnTrack,
	}

	suite.mockRepo.EXPECT().GetByID(goalID).Return(nil, gorm.ErrRecordNotFound)

	checkIn, err := suite.svc.SubmitCheckIn(context.Background(), goalID, req)
	suite.Nil(checkIn)
	suite.ErrorIs(err, apperrors.ErrGoalNotFound)
}

// TestSubmitCheckInUnknownUser tests check-in by a user that does not exist
func (suite *GoalServiceTestSuite) TestSubmitCheckInUnknownUser() {
	goalID := uuid.New()
	userID := uuid.New()
	goal := &models.Goal{TargetValue: 10, Confidence: models.ConfidenceOnTrack}
	goal.ID = goalID

	req := &service.SubmitCheckInRequest{
		UserID:     userID,
		Progress:   30,
		Confidence: models.ConfidenceOnTrack,
	}

	suite.mockRepo.EXPECT().GetByID(goalID).Return(goal, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	checkIn, err := suite.svc.SubmitCheckIn(context.Background(), goalID, req)
	suite.Nil(checkIn)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestListGoalsStatusFilter tests the derived open/completed partition
func (suite *GoalServiceTestSuite) TestListGoalsStatusFilter() {
	open := models.Goal{Title: "Open goal", TargetValue: 10, CurrentValue: 4}
	done := models.Goal{Title: "Done goal", TargetValue: 10, CurrentValue: 10}

	suite.mockRepo.EXPECT().GetAll(false).Return([]models.Goal{open, done}, nil)

	completed, err := suite.svc.List(context.Background(), nil, service.GoalStatusCompleted)
	suite.NoError(err)
	suite.Len(completed, 1)
	suite.Equal("Done goal", completed[0].Title)
	suite.True(completed[0].IsCompleted)
}

// TestListGoalsByUser tests the user scope
func (suite *GoalServiceTestSuite) TestListGoalsByUser() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().GetByUserID(userID, false).Return([]models.Goal{
		{UserID: userID, Title: "Mine", TargetValue: 10},
	}, nil)

	goals, err := suite.svc.List(context.Background(), &userID, "")
	suite.NoError(err)
	suite.Len(goals, 1)
	suite.Equal("Mine", goals[0].Title)
}

// TestGoalServiceTestSuite runs the test suite
func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
