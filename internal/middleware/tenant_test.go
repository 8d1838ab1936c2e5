// internal/middleware/tenant_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type TenantAccessTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	// session identity injected per request
	role      string
	partnerID string
}

func (suite *TenantAccessTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.Partner{}, &models.Customer{}))
	suite.db = db

	suite.Require().NoError(db.Create(&models.Partner{
		AcronisID: "tenant-a", Name: "A", Active: true,
	}).Error)
	suite.Require().NoError(db.Create(&models.Partner{
		AcronisID: "tenant-b", Name: "B", Active: true,
	}).Error)
	suite.Require().NoError(db.Create(&models.Partner{
		AcronisID: "tenant-a-sub", ParentAcronisID: "tenant-a", Name: "A Sub", Active: true,
	}).Error)
	suite.Require().NoError(db.Create(&models.Customer{
		AcronisID: "cust-a1", PartnerAcronisID: "tenant-a", Name: "C", Active: true,
	}).Error)

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_role", suite.role)
		c.Set("partner_acronis_id", suite.partnerID)
		c.Next()
	})
	tenants := suite.router.Group("/tenants/:id", TenantAccessRequired(db))
	tenants.GET("/usages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant": c.Param("id")})
	})
}

func (suite *TenantAccessTestSuite) get(tenantID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/tenants/"+tenantID+"/usages", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TenantAccessTestSuite) TestAdminQueriesAnyTenant() {
	suite.role = string(models.UserRoleAdmin)
	suite.partnerID = ""

	suite.Equal(http.StatusOK, suite.get("tenant-b").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerQueriesOwnTenant() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = "tenant-a"

	suite.Equal(http.StatusOK, suite.get("tenant-a").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerQueriesOwnCustomer() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = "tenant-a"

	suite.Equal(http.StatusOK, suite.get("cust-a1").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerQueriesChildPartner() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = "tenant-a"

	suite.Equal(http.StatusOK, suite.get("tenant-a-sub").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerBlockedFromForeignTenant() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = "tenant-a"

	suite.Equal(http.StatusUnauthorized, suite.get("tenant-b").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerBlockedFromForeignCustomer() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = "tenant-b"

	suite.Equal(http.StatusUnauthorized, suite.get("cust-a1").Code)
}

func (suite *TenantAccessTestSuite) TestPartnerWithoutTenantIsBlocked() {
	suite.role = string(models.UserRolePartner)
	suite.partnerID = ""

	suite.Equal(http.StatusUnauthorized, suite.get("tenant-a").Code)
}

func TestTenantAccessTestSuite(t *testing.T) {
	suite.Run(t, new(TenantAccessTestSuite))
}
