package service_test

import (
	"context"
	"testing"

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

// DepartmentServiceTestSuite defines the test suite for DepartmentService
type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockDepartmentRepositoryInterface
	svc      *service.DepartmentService
}

// SetupTest sets up the test suite
func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.svc = service.NewDepartmentService(suite.mockRepo, cache.New(nil), validator.New())
}

// TearDownTest cleans up after each test
func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDepartment tests successful department creation
func (suite *DepartmentServiceTestSuite) TestCreateDepartment() {
	req := &service.CreateDepartmentRequest{
		Name:      "Engineering",
		Code:      "ENG",
		SortOrder: 1,
	}

	suite.mockRepo.EXPECT().GetByCode("ENG").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.Department) error {
		suite.Equal("Engineering", d.Name)
		suite.Equal("ENG", d.Code)
		suite.Equal(1, d.SortOrder)
		suite.True(d.IsActive)
		return nil
	})

	department, err := suite.svc.Create(context.Background(), req)
	suite.NoError(err)
	suite.NotNil(department)
	suite.Equal("ENG", department.Code)
}

// TestCreateDepartmentDuplicateCode tests the unique code conflict
func (suite *DepartmentServiceTestSuite) TestCreateDepartmentDuplicateCode() {
	req := &service.CreateDepartmentRequest{Name: "Engineering", Code: "ENG"}

	suite.mockRepo.EXPECT().GetByCode("ENG").Return(&models.Department{Code: "ENG"}, nil)

	department, err := suite.svc.Create(context.Background(), req)
	suite.Nil(department)
	suite.ErrorIs(err, apperrors.ErrDepartmentCodeExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateDepartmentValidation tests request validation
func (suite *DepartmentServiceTestSuite) TestCreateDepartmentValidation() {
	req := &service.CreateDepartmentRequest{Name: "", Code: "ENG"}

	department, err := suite.svc.Create(context.Background(), req)
	suite.Nil(department)
	suite.Error(err)
}

// TestGetDepartmentNotFound tests the not-found mapping
func (suite *DepartmentServiceTestSuite) TestGetDepartmentNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	department, err := suite.svc.GetByID(context.Background(), id)
	suite.Nil(department)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

// TestUpdateDepartmentCodeConflict tests changing a code onto an existing one
func (suite *DepartmentServiceTestSuite) TestUpdateDepartmentCodeConflict() {
	id := uuid.New()
	existing := &models.Department{Name: "Engineering", Code: "ENG", IsActive: true}
	existing.ID = id

	req := &service.UpdateDepartmentRequest{Name: "Engineering", Code: "OPS"}

	suite.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockRepo.EXPECT().GetByCode("OPS").Return(&models.Department{Code: "OPS"}, nil)

	department, err := suite.svc.Update(context.Background(), id, req)
	suite.Nil(department)
	suite.ErrorIs(err, apperrors.ErrDepartmentCodeExists)
}

// TestDeleteDepartmentNotFound tests deleting a missing department
func (suite *DepartmentServiceTestSuite) TestDeleteDepartmentNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound)

	err := suite.svc.Delete(context.Background(), id)
	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

// TestListDepartments tests listing with the active filter
func (suite *DepartmentServiceTestSuite) TestListDepartments() {
	departments := []models.Department{
		{Name: "Engineering", Code: "ENG", SortOrder: 1, IsActive: true},
		{Name: "Operations", Code: "OPS", SortOrder: 2, IsActive: true},
	}
	suite.mockRepo.EXPECT().GetAll(true).Return(departments, nil)

	result, err := suite.svc.List(context.Background(), true)
	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal("ENG", result[0].Code)
}

// TestDepartmentServiceTestSuite runs the test suite
func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
