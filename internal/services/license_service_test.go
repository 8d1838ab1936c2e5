// internal/services/license_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type LicenseServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *LicenseService
}

func (suite *LicenseServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.service = NewLicenseService(suite.db)
}

func (suite *LicenseServiceTestSuite) seedLicenses(n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		license := &models.License{
			SerialNo:  "SN-" + uuid.NewString(),
			Key:       "KEY-" + uuid.NewString(),
			ProductID: "cyber-protect",
		}
		suite.Require().NoError(suite.db.Create(license).Error)
		ids = append(ids, license.ID)
	}
	return ids
}

func (suite *LicenseServiceTestSuite) TestCreateAndGet() {
	expires := time.Now().Add(365 * 24 * time.Hour)
	license, err := suite.service.Create(&CreateLicenseRequest{
		SerialNo:  "SN-001",
		Key:       "KEY-001",
		ProductID: "cyber-protect",
		ExpiresAt: &expires,
	}, "admin@test.com")

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, license.ID)
	suite.Equal("admin@test.com", license.CreatedBy)

	fetched, err := suite.service.GetByID(license.ID)
	suite.Require().NoError(err)
	suite.Equal("SN-001", fetched.SerialNo)
}

func (suite *LicenseServiceTestSuite) TestCreateDuplicateSerial() {
	_, err := suite.service.Create(&CreateLicenseRequest{
		SerialNo: "SN-001", Key: "KEY-001", ProductID: "p",
	}, "admin@test.com")
	suite.Require().NoError(err)

	_, err = suite.service.Create(&CreateLicenseRequest{
		SerialNo: "SN-001", Key: "KEY-002", ProductID: "p",
	}, "admin@test.com")

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyLicenseDuplicate, be.Key)
}

func (suite *LicenseServiceTestSuite) TestAssignToPartner() {
	ids := suite.seedLicenses(3)

	count, err := suite.service.Assign(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindPartner,
		OwnerAcronisID: "tenant-123",
	}, "admin@test.com", "")

	suite.Require().NoError(err)
	suite.Equal(int64(3), count)

	var licenses []models.License
	suite.Require().NoError(suite.db.Find(&licenses, "id IN ?", ids).Error)
	for _, lic := range licenses {
		suite.Require().NotNil(lic.PartnerAcronisID)
		suite.Equal("tenant-123", *lic.PartnerAcronisID)
		suite.NotNil(lic.AssignedAt)
		suite.Nil(lic.ActivatedAt)
	}

	var history []models.LicenseHistory
	suite.Require().NoError(suite.db.Find(&history, "license_id IN ?", ids).Error)
	suite.Len(history, 3)
	for _, h := range history {
		suite.Equal(models.LicenseActionAssignment, h.Action)
		suite.Equal("tenant-123", h.PartnerAcronisID)
		suite.Empty(h.PreviousPartnerAcronisID)
		suite.Equal("admin@test.com", h.CreatedBy)
	}
}

func (suite *LicenseServiceTestSuite) TestAssignToCustomerSetsActivatedAt() {
	ids := suite.seedLicenses(1)

	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindCustomer,
		OwnerAcronisID: "customer-9",
	}, "partner@test.com", "")
	suite.Require().NoError(err)

	var lic models.License
	suite.Require().NoError(suite.db.First(&lic, "id = ?", ids[0]).Error)
	suite.Require().NotNil(lic.CustomerAcronisID)
	suite.Equal("customer-9", *lic.CustomerAcronisID)
	suite.NotNil(lic.ActivatedAt)
	suite.Nil(lic.AssignedAt)

	var h models.LicenseHistory
	suite.Require().NoError(suite.db.First(&h, "license_id = ?", ids[0]).Error)
	suite.Equal(models.LicenseActionCustomerAssignment, h.Action)
}

func (suite *LicenseServiceTestSuite) TestReassignRecordsPreviousOwner() {
	ids := suite.seedLicenses(1)

	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs: ids, Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-a",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	_, err = suite.service.Assign(&AssignLicensesRequest{
		IDs: ids, Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-b",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	var history []models.LicenseHistory
	suite.Require().NoError(suite.db.Order("created_at ASC").
		Find(&history, "license_id = ?", ids[0]).Error)
	suite.Require().Len(history, 2)
	suite.Equal("tenant-a", history[1].PreviousPartnerAcronisID)
	suite.Equal("tenant-b", history[1].PartnerAcronisID)
}

func (suite *LicenseServiceTestSuite) TestAssignUnknownIDsIsBusinessFailure() {
	count, err := suite.service.Assign(&AssignLicensesRequest{
		IDs:            []uuid.UUID{uuid.New(), uuid.New()},
		Kind:           models.OwnerKindPartner,
		OwnerAcronisID: "tenant-123",
	}, "admin@test.com", "")

	suite.Equal(int64(0), count)
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyLicenseNoneAssigned, be.Key)

	// Nothing committed
	var historyCount int64
	suite.Require().NoError(suite.db.Model(&models.LicenseHistory{}).Count(&historyCount).Error)
	suite.Equal(int64(0), historyCount)
}

func (suite *LicenseServiceTestSuite) TestAssignFirstAction() {
	ids := suite.seedLicenses(2)

	count, err := suite.service.AssignFirst(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindPartner,
		OwnerAcronisID: "tenant-123",
	}, "admin@test.com")

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	var history []models.LicenseHistory
	suite.Require().NoError(suite.db.Find(&history).Error)
	suite.Require().Len(history, 2)
	for _, h := range history {
		suite.Equal(models.LicenseActionFirstAssignment, h.Action)
	}
}

func (suite *LicenseServiceTestSuite) TestAssignFirstPartialHitRollsBack() {
	ids := suite.seedLicenses(1)
	ids = append(ids, uuid.New()) // stale id

	_, err := suite.service.AssignFirst(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindPartner,
		OwnerAcronisID: "tenant-123",
	}, "admin@test.com")

	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyLicenseNoneAssigned, be.Key)

	// The existing license was not updated either.
	var lic models.License
	suite.Require().NoError(suite.db.First(&lic, "id = ?", ids[0]).Error)
	suite.Nil(lic.PartnerAcronisID)
}

func (suite *LicenseServiceTestSuite) TestSetPartial() {
	ids := suite.seedLicenses(1)

	lic, err := suite.service.SetPartial(ids[0], true, "admin@test.com", "")
	suite.Require().NoError(err)
	suite.True(lic.Partial)

	lic, err = suite.service.SetPartial(ids[0], false, "admin@test.com", "")
	suite.Require().NoError(err)
	suite.False(lic.Partial)
}

func (suite *LicenseServiceTestSuite) TestListFilters() {
	ids := suite.seedLicenses(3)
	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs: ids[:2], Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-a",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	owned, err := suite.service.List(LicenseFilter{PartnerAcronisID: "tenant-a"}, params)
	suite.Require().NoError(err)
	suite.Equal(int64(2), owned.Total)
	suite.Len(owned.Data.([]models.License), 2)

	free, err := suite.service.List(LicenseFilter{Unassigned: true}, params)
	suite.Require().NoError(err)
	suite.Equal(int64(1), free.Total)
}

func (suite *LicenseServiceTestSuite) TestAssignScopedRejectsForeignLicense() {
	ids := suite.seedLicenses(1)
	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs: ids, Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-a",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	// Another partner cannot move a license it does not own.
	count, err := suite.service.Assign(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindCustomer,
		OwnerAcronisID: "cust-of-b",
	}, "partner@b.com", "tenant-b")

	suite.Equal(int64(0), count)
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyLicenseNoneAssigned, be.Key)

	var lic models.License
	suite.Require().NoError(suite.db.First(&lic, "id = ?", ids[0]).Error)
	suite.Require().NotNil(lic.PartnerAcronisID)
	suite.Equal("tenant-a", *lic.PartnerAcronisID)
	suite.Nil(lic.CustomerAcronisID)

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&models.LicenseHistory{}).Count(&historyCount).Error)
	suite.Equal(int64(1), historyCount)
}

func (suite *LicenseServiceTestSuite) TestAssignScopedToOwnerSucceeds() {
	ids := suite.seedLicenses(1)
	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs: ids, Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-a",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	count, err := suite.service.Assign(&AssignLicensesRequest{
		IDs:            ids,
		Kind:           models.OwnerKindCustomer,
		OwnerAcronisID: "cust-1",
	}, "partner@a.com", "tenant-a")

	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	var lic models.License
	suite.Require().NoError(suite.db.First(&lic, "id = ?", ids[0]).Error)
	suite.Require().NotNil(lic.CustomerAcronisID)
	suite.Equal("cust-1", *lic.CustomerAcronisID)
}

func (suite *LicenseServiceTestSuite) TestSetPartialScopedRejectsForeignLicense() {
	ids := suite.seedLicenses(1)
	_, err := suite.service.Assign(&AssignLicensesRequest{
		IDs: ids, Kind: models.OwnerKindPartner, OwnerAcronisID: "tenant-a",
	}, "admin@test.com", "")
	suite.Require().NoError(err)

	_, err = suite.service.SetPartial(ids[0], true, "partner@b.com", "tenant-b")
	_, ok := AsNotFoundError(err)
	suite.True(ok)

	var lic models.License
	suite.Require().NoError(suite.db.First(&lic, "id = ?", ids[0]).Error)
	suite.False(lic.Partial)

	_, err = suite.service.SetPartial(ids[0], true, "partner@a.com", "tenant-a")
	suite.Require().NoError(err)
}

func TestLicenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LicenseServiceTestSuite))
}
