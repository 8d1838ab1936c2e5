// internal/services/partner_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type PartnerServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	partners  *PartnerService
	customers *CustomerService
}

func (suite *PartnerServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.partners = NewPartnerService(suite.db)
	suite.customers = NewCustomerService(suite.db)
}

func (suite *PartnerServiceTestSuite) TestCreateAndGet() {
	partner, err := suite.partners.Create(&CreatePartnerRequest{
		AcronisID:       "tenant-123",
		ParentAcronisID: "tenant-root",
		Name:            "Acme",
		Email:           "Info@Acme.COM",
	}, "admin@test.com")
	suite.Require().NoError(err)
	suite.True(partner.Active)
	suite.Equal("info@acme.com", partner.Email)

	fetched, err := suite.partners.GetByAcronisID("tenant-123")
	suite.Require().NoError(err)
	suite.Equal(partner.ID, fetched.ID)
}

func (suite *PartnerServiceTestSuite) TestCreateDuplicateTenant() {
	_, err := suite.partners.Create(&CreatePartnerRequest{
		AcronisID: "tenant-123", Name: "Acme",
	}, "admin@test.com")
	suite.Require().NoError(err)

	_, err = suite.partners.Create(&CreatePartnerRequest{
		AcronisID: "tenant-123", Name: "Other",
	}, "admin@test.com")

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyPartnerDuplicate, be.Key)
}

func (suite *PartnerServiceTestSuite) TestGetUnknownIsNotFound() {
	_, err := suite.partners.GetByAcronisID("missing")
	_, ok := AsNotFoundError(err)
	suite.True(ok)
}

func (suite *PartnerServiceTestSuite) TestListByParent() {
	for _, p := range []CreatePartnerRequest{
		{AcronisID: "child-1", ParentAcronisID: "root", Name: "B"},
		{AcronisID: "child-2", ParentAcronisID: "root", Name: "A"},
		{AcronisID: "other", ParentAcronisID: "elsewhere", Name: "C"},
	} {
		req := p
		_, err := suite.partners.Create(&req, "admin@test.com")
		suite.Require().NoError(err)
	}

	children, err := suite.partners.List("root")
	suite.Require().NoError(err)
	suite.Require().Len(children, 2)
	suite.Equal("A", children[0].Name)

	all, err := suite.partners.List("")
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *PartnerServiceTestSuite) TestUpdate() {
	_, err := suite.partners.Create(&CreatePartnerRequest{
		AcronisID: "tenant-123", Name: "Acme",
	}, "admin@test.com")
	suite.Require().NoError(err)

	name := "Acme Renamed"
	active := false
	updated, err := suite.partners.Update("tenant-123", &UpdatePartnerRequest{
		Name: &name, Active: &active,
	}, "admin@test.com")
	suite.Require().NoError(err)
	suite.Equal("Acme Renamed", updated.Name)
	suite.False(updated.Active)
	suite.Equal("admin@test.com", updated.UpdatedBy)
}

func (suite *PartnerServiceTestSuite) TestCustomerRequiresExistingPartner() {
	_, err := suite.customers.Create(&CreateCustomerRequest{
		AcronisID:        "cust-1",
		PartnerAcronisID: "missing",
		Name:             "End Customer",
	}, "admin@test.com")

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyCustomerUnknownParent, be.Key)

	_, err = suite.partners.Create(&CreatePartnerRequest{
		AcronisID: "tenant-123", Name: "Acme",
	}, "admin@test.com")
	suite.Require().NoError(err)

	customer, err := suite.customers.Create(&CreateCustomerRequest{
		AcronisID:        "cust-1",
		PartnerAcronisID: "tenant-123",
		Name:             "End Customer",
	}, "admin@test.com")
	suite.Require().NoError(err)
	suite.True(customer.Active)

	listed, err := suite.customers.List("tenant-123")
	suite.Require().NoError(err)
	suite.Len(listed, 1)
}

func (suite *PartnerServiceTestSuite) TestCustomerDuplicateTenant() {
	_, err := suite.partners.Create(&CreatePartnerRequest{
		AcronisID: "tenant-123", Name: "Acme",
	}, "admin@test.com")
	suite.Require().NoError(err)

	_, err = suite.customers.Create(&CreateCustomerRequest{
		AcronisID: "cust-1", PartnerAcronisID: "tenant-123", Name: "C1",
	}, "admin@test.com")
	suite.Require().NoError(err)

	_, err = suite.customers.Create(&CreateCustomerRequest{
		AcronisID: "cust-1", PartnerAcronisID: "tenant-123", Name: "C2",
	}, "admin@test.com")

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyCustomerDuplicate, be.Key)
}

func (suite *PartnerServiceTestSuite) TestCustomerUpdateScopedToOwner() {
	for _, p := range []CreatePartnerRequest{
		{AcronisID: "tenant-a", Name: "A"},
		{AcronisID: "tenant-b", Name: "B"},
	} {
		req := p
		_, err := suite.partners.Create(&req, "admin@test.com")
		suite.Require().NoError(err)
	}
	_, err := suite.customers.Create(&CreateCustomerRequest{
		AcronisID: "cust-1", PartnerAcronisID: "tenant-a", Name: "C1",
	}, "admin@test.com")
	suite.Require().NoError(err)

	name := "Renamed"

	// A foreign partner scope cannot see the customer.
	_, err = suite.customers.Update("cust-1", &UpdateCustomerRequest{Name: &name},
		"partner@b.com", "tenant-b")
	_, ok := AsNotFoundError(err)
	suite.True(ok)

	var untouched models.Customer
	suite.Require().NoError(suite.db.First(&untouched, "acronis_id = ?", "cust-1").Error)
	suite.Equal("C1", untouched.Name)

	// The owning partner can.
	updated, err := suite.customers.Update("cust-1", &UpdateCustomerRequest{Name: &name},
		"partner@a.com", "tenant-a")
	suite.Require().NoError(err)
	suite.Equal("Renamed", updated.Name)

	// Admin callers carry no scope.
	active := false
	updated, err = suite.customers.Update("cust-1", &UpdateCustomerRequest{Active: &active},
		"admin@test.com", "")
	suite.Require().NoError(err)
	suite.False(updated.Active)
}

func TestPartnerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerServiceTestSuite))
}
