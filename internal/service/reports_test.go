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

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReportsServiceTestSuite defines the test suite for ReportsService
type ReportsServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	mockDeptRepo      *mocks.MockDepartmentRepositoryInterface
	mockObjectiveRepo *mocks.MockCompanyObjectiveRepositoryInterface
	mockTeamObjRepo   *mocks.MockTeamObjectiveRepositoryInterface
	mockGoalRepo      *mocks.MockGoalRepositoryInterface
	mockCheckInRepo   *mocks.MockCheckInRepositoryInterface
	mockCompRepo      *mocks.MockCompetencyRepositoryInterface
	mockPlanRepo      *mocks.MockDevelopmentPlanRepositoryInterface
	mockRecogRepo     *mocks.MockRecognitionRepositoryInterface
	svc               *service.ReportsService
}

// SetupTest sets up the test suite
func (suite *ReportsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockObjectiveRepo = mocks.NewMockCompanyObjectiveRepositoryInterface(suite.ctrl)
	suite.mockTeamObjRepo = mocks.NewMockTeamObjectiveRepositoryInterface(suite.ctrl)
	suite.mockGoalRepo = mocks.NewMockGoalRepositoryInterface(suite.ctrl)
	suite.mockCheckInRepo = mocks.NewMockCheckInRepositoryInterface(suite.ctrl)
	suite.mockCompRepo = mocks.NewMockCompetencyRepositoryInterface(suite.ctrl)
	suite.mockPlanRepo = mocks.NewMockDevelopmentPlanRepositoryInterface(suite.ctrl)
	suite.mockRecogRepo = mocks.NewMockRecognitionRepositoryInterface(suite.ctrl)
	suite.svc = service.NewReportsService(
		suite.mockUserRepo,
		suite.mockTeamRepo,
		suite.mockDeptRepo,
		suite.mockObjectiveRepo,
		suite.mockTeamObjRepo,
		suite.mockGoalRepo,
		suite.mockCheckInRepo,
		suite.mockCompRepo,
		suite.mockPlanRepo,
		suite.mockRecogRepo,
		cache.New(nil),
	)
}

// TearDownTest cleans up after each test
func (suite *ReportsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportsServiceTestSuite) expectCompanyCounts() {
	suite.mockUserRepo.EXPECT().GetAll(1, 0).Return([]models.User{}, int64(12), nil)
	suite.mockTeamRepo.EXPECT().GetAll(false).Return([]models.Team{{Name: "Platform"}}, nil)
	suite.mockDeptRepo.EXPECT().GetAll(false).Return([]models.Department{{Code: "ENG"}, {Code: "OPS"}}, nil)
	suite.mockGoalRepo.EXPECT().GetAll(false).Return([]models.Goal{}, nil)
	suite.mockObjectiveRepo.EXPECT().GetAll(false).Return([]models.CompanyObjective{}, nil)
}

// TestGetCompanyReportConfidenceDistribution tests that recent check-ins
// are tallied per confidence level
func (suite *ReportsServiceTestSuite) TestGetCompanyReportConfidenceDistribution() {
	suite.expectCompanyCounts()
	suite.mockCheckInRepo.EXPECT().GetSince(gomock.Any()).DoAndReturn(func(weekStart time.Time) ([]models.CheckIn, error) {
		suite.Equal(time.Sunday, weekStart.Weekday())
		suite.True(weekStart.Before(time.Now()))
		return []models.CheckIn{
			{Confidence: models.ConfidenceOnTrack},
			{Confidence: models.ConfidenceOnTrack},
			{Confidence: models.ConfidenceAtRisk},
			{Confidence: models.ConfidenceOffTrack},
		}, nil
	})

	report, err := suite.svc.GetCompanyReport(context.Background())
	suite.NoError(err)
	suite.Equal(int64(12), report.UserCount)
	suite.Equal(1, report.TeamCount)
	suite.Equal(2, report.DepartmentCount)
	suite.Equal(2, report.ConfidenceDistribution[models.ConfidenceOnTrack])
	suite.Equal(1, report.ConfidenceDistribution[models.ConfidenceAtRisk])
	suite.Equal(1, report.ConfidenceDistribution[models.ConfidenceOffTrack])
}

// TestGetCompanyReportNoCheckIns tests that the distribution still carries
// all three levels when no check-ins fall inside the window
func (suite *ReportsServiceTestSuite) TestGetCompanyReportNoCheckIns() {
	suite.expectCompanyCounts()
	suite.mockCheckInRepo.EXPECT().GetSince(gomock.Any()).Return([]models.CheckIn{}, nil)

	report, err := suite.svc.GetCompanyReport(context.Background())
	suite.NoError(err)
	suite.Len(report.ConfidenceDistribution, 3)
	suite.Equal(0, report.ConfidenceDistribution[models.ConfidenceOnTrack])
	suite.Equal(0, report.ConfidenceDistribution[models.ConfidenceAtRisk])
	suite.Equal(0, report.ConfidenceDistribution[models.ConfidenceOffTrack])
}

// TestGetTeamReportNotFound tests the not-found mapping
func (suite *ReportsServiceTestSuite) TestGetTeamReportNotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	report, err := suite.svc.GetTeamReport(context.Background(), id)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestReportsServiceTestSuite runs the test suite
func TestReportsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportsServiceTestSuite))
}
