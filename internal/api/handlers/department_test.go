package handlers_test

import (
	"context"
	"net/http"
	"testing"

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

// DepartmentHandlerTestSuite defines the test suite for department handlers
type DepartmentHandlerTestSuite struct {
	suite.Suite
	httpSuite   *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockDepartmentServiceInterface
}

// SetupTest sets up the test suite
func (suite *DepartmentHandlerTestSuite) SetupTest() {
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDepartmentServiceInterface(suite.ctrl)

	handler := handlers.NewDepartmentHandler(suite.mockService)
	departments := suite.httpSuite.Router.Group("/api/v1/departments")
	{
		departments.POST("", handler.CreateDepartment)
		departments.GET("", handler.ListDepartments)
		departments.GET("/:id", handler.GetDepartment)
		departments.PUT("/:id", handler.UpdateDepartment)
		departments.DELETE("/:id", handler.DeleteDepartment)
	}
}

// TearDownTest cleans up after each test
func (suite *DepartmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateDepartment tests successful department creation
func (suite *DepartmentHandlerTestSuite) TestCreateDepartment() {
	created := &models.Department{Name: "Engineering", Code: "ENG", SortOrder: 1, IsActive: true}
	created.ID = uuid.New()

	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *service.CreateDepartmentRequest) (*models.Department, error) {
			suite.Equal("Engineering", req.Name)
			suite.Equal("ENG", req.Code)
			return created, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/departments", map[string]interface{}{
		"name":       "Engineering",
		"code":       "ENG",
		"sort_order": 1,
	})

	var response models.Department
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(created.ID, response.ID)
	suite.Equal("ENG", response.Code)
}

// TestCreateDepartmentInvalidBody tests malformed JSON handling
func (suite *DepartmentHandlerTestSuite) TestCreateDepartmentInvalidBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/departments", "not json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestCreateDepartmentDuplicateCode tests conflict mapping
func (suite *DepartmentHandlerTestSuite) TestCreateDepartmentDuplicateCode() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrDepartmentCodeExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/departments", map[string]interface{}{
		"name": "Engineering",
		"code": "ENG",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestListDepartments tests listing with the active filter
func (suite *DepartmentHandlerTestSuite) TestListDepartments() {
	departments := []models.Department{
		{Name: "Engineering", Code: "ENG", IsActive: true},
		{Name: "Sales", Code: "SLS", IsActive: true},
	}

	suite.mockService.EXPECT().
		List(gomock.Any(), true).
		Return(departments, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/departments?active=true", nil)

	var response []models.Department
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

// TestGetDepartmentInvalidID tests UUID validation on the path parameter
func (suite *DepartmentHandlerTestSuite) TestGetDepartmentInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/departments/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

// TestGetDepartmentNotFound tests not found mapping
func (suite *DepartmentHandlerTestSuite) TestGetDepartmentNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, apperrors.ErrDepartmentNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/departments/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

// TestUpdateDepartment tests successful update
func (suite *DepartmentHandlerTestSuite) TestUpdateDepartment() {
	id := uuid.New()
	updated := &models.Department{Name: "Platform Engineering", Code: "ENG", IsActive: true}
	updated.ID = id

	suite.mockService.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		Return(updated, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/departments/"+id.String(), map[string]interface{}{
		"name": "Platform Engineering",
		"code": "ENG",
	})

	var response models.Department
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Platform Engineering", response.Name)
}

// TestDeleteDepartment tests successful deletion
func (suite *DepartmentHandlerTestSuite) TestDeleteDepartment() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Delete(gomock.Any(), id).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/departments/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestDeleteDepartmentInUse tests conflict mapping on referenced departments
func (suite *DepartmentHandlerTestSuite) TestDeleteDepartmentInUse() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Delete(gomock.Any(), id).
		Return(apperrors.ErrDepartmentInUse)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/departments/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

// TestDepartmentHandlerTestSuite runs the test suite
func TestDepartmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}
