package service_test

import (
	"context"
	"testing"

	"peakform-backend/internal/cache"
	"peakform-backend/internal/database/models"
	apperrors "peakform-backend/internal/errors"
	"peakform-backend/internal/mocks"
	"peakform-backend/internal/repository"
	"peakform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RecognitionServiceTestSuite defines the test suite for RecognitionService
type RecognitionServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockRecognitionRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	svc          *service.RecognitionService
}

// SetupTest sets up the test suite
func (suite *RecognitionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRecognitionRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.svc = service.NewRecognitionService(suite.mockRepo, suite.mockUserRepo, cache.New(nil), validator.New())
}

// TearDownTest cleans up after each test
func (suite *RecognitionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateRecognition tests sending a recognition with the public default
func (suite *RecognitionServiceTestSuite) TestCreateRecognition() {
	fromID := uuid.New()
	toID := uuid.New()
	req := &service.CreateRecognitionRequest{
		FromUserID: fromID,
		ToUserID:   toID,
		Value:      models.ValueTeamwork,
		Message:    "Great collaboration on the release",
	}

	suite.mockUserRepo.EXPECT().GetByID(fromID).Return(&models.User{}, nil)
	suite.mockUserRepo.EXPECT().GetByID(toID).Return(&models.User{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.Recognition) error {
		suite.True(r.IsPublic)
		suite.Equal(models.ValueTeamwork, r.Value)
		return nil
	})

	recognition, err := suite.svc.Create(context.Background(), req)
	suite.NoError(err)
	suite.NotNil(recognition)
}

// TestCreateRecognitionToSelf tests the self-recognition rejection
func (suite *RecognitionServiceTestSuite) TestCreateRecognitionToSelf() {
	id := uuid.New()
	req := &service.CreateRecognitionRequest{
		FromUserID: id,
		ToUserID:   id,
		Value:      models.ValueOwnership,
		Message:    "I did great",
	}

	recognition, err := suite.svc.Create(context.Background(), req)
	suite.Nil(recognition)
	suite.ErrorIs(err, apperrors.ErrSelfRecognition)
}

// TestCreateRecognitionUnknownRecipient tests the recipient check
func (suite *RecognitionServiceTestSuite) TestCreateRecognitionUnknownRecipient() {
	fromID := uuid.New()
	toID := uuid.New()
	req := &service.CreateRecognitionRequest{
		FromUserID: fromID,
		ToUserID:   toID,
		Value:      models.ValueExcellence,
		Message:    "Nice work",
	}

	suite.mockUserRepo.EXPECT().GetByID(fromID).Return(&models.User{}, nil)
	suite.mockUserRepo.EXPECT().GetByID(toID).Return(nil, gorm.ErrRecordNotFound)

	recognition, err := suite.svc.Create(context.Background(), req)
	suite.Nil(recognition)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestListRejectsInvalidPagination tests the pagination bounds
func (suite *RecognitionServiceTestSuite) TestListRejectsInvalidPagination() {
	_, err := suite.svc.List(context.Background(), false, 500, 0)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)

	_, err = suite.svc.List(context.Background(), false, 10, -1)
	suite.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

// TestListExcludesPrivateByDefault tests the public-only filter plumbing
func (suite *RecognitionServiceTestSuite) TestListExcludesPrivateByDefault() {
	suite.mockRepo.EXPECT().GetAll(true, 20, 0).Return([]models.Recognition{{Message: "kudos"}}, int64(1), nil)

	result, err := suite.svc.List(context.Background(), false, 0, 0)
	suite.NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Equal(20, result.Limit)
	suite.Len(result.Recognitions, 1)
}

// TestGetLeaderboard tests that leaderboard rows are enriched with users
func (suite *RecognitionServiceTestSuite) TestGetLeaderboard() {
	topID := uuid.New()
	secondID := uuid.New()
	rows := []repository.LeaderboardEntry{
		{UserID: topID, Count: 7},
		{UserID: secondID, Count: 3},
	}
	topUser := &models.User{FirstName: "Ada", LastName: "Lovelace"}

	suite.mockRepo.EXPECT().GetLeaderboard(10).Return(rows, nil)
	suite.mockUserRepo.EXPECT().GetByID(topID).Return(topUser, nil)
	suite.mockUserRepo.EXPECT().GetByID(secondID).Return(nil, gorm.ErrRecordNotFound)

	entries, err := suite.svc.GetLeaderboard(context.Background(), 0)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(int64(7), entries[0].Count)
	suite.NotNil(entries[0].User)
	suite.Equal("Ada Lovelace", entries[0].User.FullName())
	suite.Nil(entries[1].User)
}

// TestRecognitionServiceTestSuite runs the test suite
func TestRecognitionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecognitionServiceTestSuite))
}
