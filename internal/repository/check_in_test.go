package repository_test

import (
	"testing"
	"time"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/repository"
	"peakform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CheckInRepositoryTestSuite defines the integration test suite for the
// check-in repository
type CheckInRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo     *repository.CheckInRepository
	goalRepo *repository.GoalRepository
	user     *models.User
	goal     *models.Goal
}

// SetupSuite sets up the shared database
func (suite *CheckInRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = repository.NewCheckInRepository(suite.DB)
	suite.goalRepo = repository.NewGoalRepository(suite.DB)
}

// SetupTest seeds a user with one goal per test
func (suite *CheckInRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()

	suite.user = testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(suite.user).Error)

	suite.goal = testutils.NewGoalFactory().Create(suite.user.ID)
	suite.Require().NoError(suite.goalRepo.Create(suite.goal))
}

func (suite *CheckInRepositoryTestSuite) newCheckIn(weekStart time.Time, progress int) *models.CheckIn {
	return &models.CheckIn{
		GoalID:     suite.goal.ID,
		UserID:     suite.user.ID,
		Progress:   progress,
		Confidence: models.ConfidenceOnTrack,
		WeekStart:  weekStart,
	}
}

// TestCreateWithGoalSync tests that the check-in insert and the goal update
// land together
func (suite *CheckInRepositoryTestSuite) TestCreateWithGoalSync() {
	checkIn := suite.newCheckIn(models.WeekStartOf(time.Now()), 60)
	checkIn.Confidence = models.ConfidenceAtRisk

	suite.goal.CurrentValue = 3
	suite.goal.Confidence = models.ConfidenceAtRisk
	suite.Require().NoError(suite.repo.CreateWithGoalSync(checkIn, suite.goal))
	suite.NotEqual(uuid.Nil, checkIn.ID)

	updated, err := suite.goalRepo.GetByID(suite.goal.ID)
	suite.Require().NoError(err)
	suite.InDelta(3.0, updated.CurrentValue, 0.001)
	suite.Equal(models.ConfidenceAtRisk, updated.Confidence)
}

// TestCreateWithGoalSyncRollsBack tests that a failed insert leaves the goal
// untouched
func (suite *CheckInRepositoryTestSuite) TestCreateWithGoalSyncRollsBack() {
	checkIn := suite.newCheckIn(models.WeekStartOf(time.Now()), 50)
	checkIn.GoalID = uuid.New() // FK violation

	suite.goal.CurrentValue = 4
	suite.Error(suite.repo.CreateWithGoalSync(checkIn, suite.goal))

	updated, err := suite.goalRepo.GetByID(suite.goal.ID)
	suite.Require().NoError(err)
	suite.InDelta(0.0, updated.CurrentValue, 0.001)
}

// TestGetByGoalIDOrdering tests most-recent-week-first ordering
func (suite *CheckInRepositoryTestSuite) TestGetByGoalIDOrdering() {
	thisWeek := models.WeekStartOf(time.Now())
	lastWeek := thisWeek.AddDate(0, 0, -7)

	old := suite.newCheckIn(lastWeek, 20)
	suite.Require().NoError(suite.DB.Create(old).Error)
	recent := suite.newCheckIn(thisWeek, 40)
	suite.Require().NoError(suite.DB.Create(recent).Error)

	checkIns, err := suite.repo.GetByGoalID(suite.goal.ID)
	suite.Require().NoError(err)
	suite.Require().Len(checkIns, 2)
	suite.Equal(40, checkIns[0].Progress)
	suite.Equal(20, checkIns[1].Progress)
}

// TestGetByUserIDLimit tests the recent-history limit across goals
func (suite *CheckInRepositoryTestSuite) TestGetByUserIDLimit() {
	thisWeek := models.WeekStartOf(time.Now())
	for i := 0; i < 3; i++ {
		checkIn := suite.newCheckIn(thisWeek.AddDate(0, 0, -7*i), 10*(i+1))
		suite.Require().NoError(suite.DB.Create(checkIn).Error)
	}

	checkIns, err := suite.repo.GetByUserID(suite.user.ID, 2)
	suite.Require().NoError(err)
	suite.Len(checkIns, 2)
	suite.Equal(10, checkIns[0].Progress)
}

// TestGetLatestForGoal tests the single most recent check-in lookup
func (suite *CheckInRepositoryTestSuite) TestGetLatestForGoal() {
	thisWeek := models.WeekStartOf(time.Now())
	suite.Require().NoError(suite.DB.Create(suite.newCheckIn(thisWeek.AddDate(0, 0, -7), 30)).Error)
	suite.Require().NoError(suite.DB.Create(suite.newCheckIn(thisWeek, 70)).Error)

	latest, err := suite.repo.GetLatestForGoal(suite.goal.ID)
	suite.Require().NoError(err)
	suite.Equal(70, latest.Progress)

	_, err = suite.repo.GetLatestForGoal(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCheckInRepositoryTestSuite runs the test suite
func TestCheckInRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CheckInRepositoryTestSuite))
}
