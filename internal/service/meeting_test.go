package service_test

import (
	"context"
	"encoding/json"
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

// MeetingServiceTestSuite defines the test suite for MeetingService
type MeetingServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockMeetingRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	svc          *service.MeetingService
}

// SetupTest sets up the test suite
func (suite *MeetingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = service.NewMeetingService(suite.mockRepo, suite.mockUserRepo, cache.New(nil), validator.New())
}

// TearDownTest cleans up after each test
func (suite *MeetingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMeeting tests scheduling a one-on-one
func (suite *MeetingServiceTestSuite) TestCreateMeeting() {
	managerID := uuid.New()
	employeeID := uuid.New()
	req := &service.CreateMeetingRequest{
		ManagerID:   managerID,
		EmployeeID:  employeeID,
		ScheduledAt: time.Now().AddDate(0, 0, 7),
		Agenda:      "Quarterly growth conversation",
		ActionItems: json.RawMessage(`["review goals","set next check-in"]`),
	}

	suite.mockUserRepo.EXPECT().GetByID(managerID).Return(&models.User{Role: models.UserRoleSupervisor}, nil)
	suite.mockUserRepo.EXPECT().GetByID(employeeID).Return(&models.User{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Meeting) error {
		suite.Equal(models.MeetingStatusScheduled, m.Status)
		suite.Equal(managerID, m.ManagerID)
		return nil
	})

	meeting, err := suite.svc.Create(context.Background(), req)
	suite.NoError(err)
	suite.NotNil(meeting)
}

// TestCreateMeetingSameParticipant tests the manager==employee rejection
func (suite *MeetingServiceTestSuite) TestCreateMeetingSameParticipant() {
	id := uuid.New()
	req := &service.CreateMeetingRequest{
		ManagerID:   id,
		EmployeeID:  id,
		ScheduledAt: time.Now(),
	}

	meeting, err := suite.svc.Create(context.Background(), req)
	suite.Nil(meeting)
	suite.ErrorIs(err, apperrors.ErrMeetingSameParticipant)
}

// TestCreateMeetingRejectsNonArrayActionItems tests action item validation
func (suite *MeetingServiceTestSuite) TestCreateMeetingRejectsNonArrayActionItems() {
	req := &service.CreateMeetingRequest{
		ManagerID:   uuid.New(),
		EmployeeID:  uuid.New(),
		ScheduledAt: time.Now(),
		ActionItems: json.RawMessage(`{"not":"an array"}`),
	}

	meeting, err := suite.svc.Create(context.Background(), req)
	suite.Nil(meeting)
	suite.Error(err)
}

// TestCreateMeetingManagerNotFound tests the manager existence check
func (suite *MeetingServiceTestSuite) TestCreateMeetingManagerNotFound() {
	managerID := uuid.New()
	req := &service.CreateMeetingRequest{
		ManagerID:   managerID,
		EmployeeID:  uuid.New(),
		ScheduledAt: time.Now(),
	}

	suite.mockUserRepo.EXPECT().GetByID(managerID).Return(nil, gorm.ErrRecordNotFound)

	meeting, err := suite.svc.Create(context.Background(), req)
	suite.Nil(meeting)
	suite.ErrorIs(err, apperrors.ErrManagerNotFound)
}

// TestListByParticipantInvalidStatus tests the status filter validation
func (suite *MeetingServiceTestSuite) TestListByParticipantInvalidStatus() {
	meetings, err := suite.svc.ListByParticipant(context.Background(), uuid.New(), models.MeetingStatus("postponed"))
	suite.Nil(meetings)
	suite.True(apperrors.IsValidation(err))
}

// TestListByParticipant tests retrieving a user's meetings
func (suite *MeetingServiceTestSuite) TestListByParticipant() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().GetByParticipant(userID, models.MeetingStatusScheduled).Return([]models.Meeting{
		{ManagerID: userID, Status: models.MeetingStatusScheduled},
	}, nil)

	meetings, err := suite.svc.ListByParticipant(context.Background(), userID, models.MeetingStatusScheduled)
	suite.NoError(err)
	suite.Len(meetings, 1)
}

// TestMeetingServiceTestSuite runs the test suite
func TestMeetingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingServiceTestSuite))
}
