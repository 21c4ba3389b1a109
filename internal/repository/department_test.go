package repository_test

import (
	"testing"

	"peakform-backend/internal/database/models"
	"peakform-backend/internal/repository"
	"peakform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DepartmentRepositoryTestSuite defines the integration test suite for the
// department repository
type DepartmentRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo    *repository.DepartmentRepository
	factory *testutils.DepartmentFactory
}

// SetupSuite sets up the shared database
func (suite *DepartmentRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite.SetupSuite()
	suite.repo = repository.NewDepartmentRepository(suite.DB)
	suite.factory = testutils.NewDepartmentFactory()
}

// TestCreateAndGetDepartment tests round-tripping a department row
func (suite *DepartmentRepositoryTestSuite) TestCreateAndGetDepartment() {
	department := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(department))
	suite.NotEqual(uuid.Nil, department.ID)

	found, err := suite.repo.GetByID(department.ID)
	suite.Require().NoError(err)
	suite.Equal(department.Name, found.Name)
	suite.Equal(department.Code, found.Code)
	suite.True(found.IsActive)
}

// TestGetByCode tests lookup by the unique code
func (suite *DepartmentRepositoryTestSuite) TestGetByCode() {
	department := suite.factory.WithCode("FIN")
	suite.Require().NoError(suite.repo.Create(department))

	found, err := suite.repo.GetByCode("FIN")
	suite.Require().NoError(err)
	suite.Equal(department.ID, found.ID)

	_, err = suite.repo.GetByCode("NOPE")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateCodeRejected tests the unique constraint on code
func (suite *DepartmentRepositoryTestSuite) TestDuplicateCodeRejected() {
	first := suite.factory.WithCode("OPS")
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factory.WithCode("OPS")
	suite.Error(suite.repo.Create(second))
}

// TestGetAllOrdering tests sort_order then name ordering and the active filter
func (suite *DepartmentRepositoryTestSuite) TestGetAllOrdering() {
	last := suite.factory.Create()
	last.Name = "Zeta"
	last.SortOrder = 2
	suite.Require().NoError(suite.repo.Create(last))

	first := suite.factory.Create()
	first.Name = "Alpha"
	first.SortOrder = 1
	suite.Require().NoError(suite.repo.Create(first))

	inactive := suite.factory.Create()
	inactive.Name = "Retired"
	inactive.SortOrder = 0
	inactive.IsActive = false
	suite.Require().NoError(suite.repo.Create(inactive))

	all, err := suite.repo.GetAll(false)
	suite.Require().NoError(err)
	suite.Len(all, 3)
	suite.Equal("Retired", all[0].Name)
	suite.Equal("Alpha", all[1].Name)
	suite.Equal("Zeta", all[2].Name)

	active, err := suite.repo.GetAll(true)
	suite.Require().NoError(err)
	suite.Len(active, 2)
}

// TestUpdateDepartment tests persisting field changes
func (suite *DepartmentRepositoryTestSuite) TestUpdateDepartment() {
	department := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(department))

	department.Name = "Renamed"
	department.SortOrder = 7
	suite.Require().NoError(suite.repo.Update(department))

	found, err := suite.repo.GetByID(department.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal(7, found.SortOrder)
}

// TestDeleteDepartment tests deletion and the missing-row sentinel
func (suite *DepartmentRepositoryTestSuite) TestDeleteDepartment() {
	department := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(department))

	suite.Require().NoError(suite.repo.Delete(department.ID))

	_, err := suite.repo.GetByID(department.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.repo.Delete(uuid.New()), gorm.ErrRecordNotFound)
}

// TestDeleteDepartmentWithTeams tests the FK restriction from teams
func (suite *DepartmentRepositoryTestSuite) TestDeleteDepartmentWithTeams() {
	department := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(department))

	lead := testutils.NewUserFactory().Create()
	suite.Require().NoError(suite.DB.Create(lead).Error)

	team := testutils.NewTeamFactory().Create(lead.ID)
	team.DepartmentID = &department.ID
	suite.Require().NoError(suite.DB.Create(team).Error)

	suite.Error(suite.repo.Delete(department.ID))

	var count int64
	suite.DB.Model(&models.Department{}).Where("id = ?", department.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestDepartmentRepositoryTestSuite runs the test suite
func TestDepartmentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentRepositoryTestSuite))
}
