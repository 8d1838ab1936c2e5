// internal/services/application_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type ApplicationServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ApplicationService
}

func (suite *ApplicationServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	notifier := NewNotificationService(testConfig())
	suite.service = NewApplicationService(suite.db, notifier)
}

func (suite *ApplicationServiceTestSuite) createApplication(email string) *models.Application {
	application, err := suite.service.Create(&CreateApplicationRequest{
		CompanyName: "Acme Bilisim",
		CompanyType: "limited",
		TaxNo:       "1234567890",
		ContactName: "Ali Veli",
		Email:       email,
		City:        "Istanbul",
	})
	suite.Require().NoError(err)
	return application
}

func (suite *ApplicationServiceTestSuite) TestCreateNormalizesEmail() {
	application := suite.createApplication("  Ali@Example.COM ")
	suite.Equal("ali@example.com", application.Email)
	suite.False(application.ApplicationDate.IsZero())
	suite.Equal(models.ApplicationStatusWaiting, application.Status())
}

func (suite *ApplicationServiceTestSuite) TestCreateDuplicateEmail() {
	suite.createApplication("ali@example.com")

	_, err := suite.service.Create(&CreateApplicationRequest{
		CompanyName: "Other",
		CompanyType: "limited",
		ContactName: "Ayse",
		Email:       "ali@example.com",
	})

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyApplicationDuplicateEmail, be.Key)
}

func (suite *ApplicationServiceTestSuite) TestApproveOnce() {
	application := suite.createApplication("ali@example.com")

	approved, err := suite.service.Approve(application.ID, "admin@test.com")
	suite.Require().NoError(err)
	suite.NotNil(approved.ApprovedAt)
	suite.Equal("admin@test.com", approved.ApprovedBy)
	suite.Equal(models.ApplicationStatusApproved, approved.Status())

	_, err = suite.service.Approve(application.ID, "other@test.com")
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyApplicationAlreadyApproved, be.Key)

	// The original approval record is untouched.
	reloaded, err := suite.service.GetByID(application.ID)
	suite.Require().NoError(err)
	suite.Equal("admin@test.com", reloaded.ApprovedBy)
}

func (suite *ApplicationServiceTestSuite) TestConvertToPartner() {
	application := suite.createApplication("ali@example.com")

	_, err := suite.service.ConvertToPartner(application.ID, &ConvertToPartnerRequest{
		AcronisID: "tenant-123",
	}, "admin@test.com")
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyApplicationNotApproved, be.Key)

	_, err = suite.service.Approve(application.ID, "admin@test.com")
	suite.Require().NoError(err)

	partner, err := suite.service.ConvertToPartner(application.ID, &ConvertToPartnerRequest{
		AcronisID:       "tenant-123",
		ParentAcronisID: "tenant-root",
	}, "admin@test.com")
	suite.Require().NoError(err)
	suite.Equal("Acme Bilisim", partner.Name)
	suite.Equal("ali@example.com", partner.Email)
	suite.Require().NotNil(partner.ApplicationID)
	suite.Equal(application.ID, *partner.ApplicationID)

	reloaded, err := suite.service.GetByID(application.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ApplicationStatusResolved, reloaded.Status())

	// Converting again is rejected.
	_, err = suite.service.ConvertToPartner(application.ID, &ConvertToPartnerRequest{
		AcronisID: "tenant-456",
	}, "admin@test.com")
	be, ok = AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyApplicationAlreadyApproved, be.Key)
}

func (suite *ApplicationServiceTestSuite) TestConvertToPartnerDuplicateTenantRollsBack() {
	existing := suite.createApplication("first@example.com")
	_, err := suite.service.Approve(existing.ID, "admin@test.com")
	suite.Require().NoError(err)
	_, err = suite.service.ConvertToPartner(existing.ID, &ConvertToPartnerRequest{
		AcronisID: "tenant-123",
	}, "admin@test.com")
	suite.Require().NoError(err)

	application := suite.createApplication("second@example.com")
	_, err = suite.service.Approve(application.ID, "admin@test.com")
	suite.Require().NoError(err)

	_, err = suite.service.ConvertToPartner(application.ID, &ConvertToPartnerRequest{
		AcronisID: "tenant-123",
	}, "admin@test.com")
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyPartnerDuplicate, be.Key)

	reloaded, err := suite.service.GetByID(application.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ApplicationStatusApproved, reloaded.Status())
}

func (suite *ApplicationServiceTestSuite) TestListByDerivedStatus() {
	waiting := suite.createApplication("waiting@example.com")
	approved := suite.createApplication("approved@example.com")
	resolved := suite.createApplication("resolved@example.com")

	_, err := suite.service.Approve(approved.ID, "admin@test.com")
	suite.Require().NoError(err)
	_, err = suite.service.Approve(resolved.ID, "admin@test.com")
	suite.Require().NoError(err)
	_, err = suite.service.ConvertToPartner(resolved.ID, &ConvertToPartnerRequest{
		AcronisID: "tenant-123",
	}, "admin@test.com")
	suite.Require().NoError(err)

	list, err := suite.service.List(models.ApplicationStatusWaiting)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(waiting.ID, list[0].ID)

	list, err = suite.service.List(models.ApplicationStatusApproved)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(approved.ID, list[0].ID)

	list, err = suite.service.List(models.ApplicationStatusResolved)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(resolved.ID, list[0].ID)

	all, err := suite.service.List("")
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestApplicationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationServiceTestSuite))
}
