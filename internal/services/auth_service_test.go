// internal/services/auth_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	cfg := testConfig()
	utils.SetJWTSecret(cfg.Session.SecretKey)
	suite.service = NewAuthService(suite.db, cfg, NewNotificationService(cfg))
}

func (suite *AuthServiceTestSuite) seedUser(email string, active bool) *models.User {
	user := &models.User{
		Email:  email,
		Name:   "Test User",
		Role:   models.UserRolePartner,
		Active: active,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

// issueToken mimics the email step: it stores the hash and returns the raw
// token that would be in the link.
func (suite *AuthServiceTestSuite) issueToken(user *models.User, ttl time.Duration) string {
	raw, err := utils.GenerateLoginToken()
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&models.LoginToken{
		UserID:    user.ID,
		TokenHash: utils.HashString(raw),
		ExpiresAt: time.Now().Add(ttl),
	}).Error)
	return raw
}

func (suite *AuthServiceTestSuite) TestRequestSignInStoresHashedToken() {
	user := suite.seedUser("partner@test.com", true)

	suite.Require().NoError(suite.service.RequestSignIn("Partner@Test.com"))

	var token models.LoginToken
	suite.Require().NoError(suite.db.First(&token, "user_id = ?", user.ID).Error)
	suite.Len(token.TokenHash, 64)
	suite.Nil(token.ConsumedAt)
	suite.True(token.ExpiresAt.After(time.Now()))
}

func (suite *AuthServiceTestSuite) TestRequestSignInUnknownEmailIsSilent() {
	suite.Require().NoError(suite.service.RequestSignIn("nobody@test.com"))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.LoginToken{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *AuthServiceTestSuite) TestRequestSignInInactiveUserIsSilent() {
	suite.seedUser("inactive@test.com", false)

	suite.Require().NoError(suite.service.RequestSignIn("inactive@test.com"))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.LoginToken{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *AuthServiceTestSuite) TestVerifyOpensSessionAndConsumesToken() {
	user := suite.seedUser("partner@test.com", true)
	raw := suite.issueToken(user, 15*time.Minute)

	result, err := suite.service.VerifyToken(raw)
	suite.Require().NoError(err)
	suite.NotEmpty(result.Token)
	suite.Equal(user.ID, result.User.ID)

	claims, err := utils.ValidateSessionJWT(result.Token)
	suite.Require().NoError(err)
	suite.Equal(user.ID.String(), claims.UserID)

	var session models.Session
	suite.Require().NoError(suite.db.First(&session, "user_id = ?", user.ID).Error)
	suite.Equal(session.ID.String(), claims.SessionID)

	// Replaying the same link fails.
	_, err = suite.service.VerifyToken(raw)
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyAuthLinkInvalid, be.Key)
}

func (suite *AuthServiceTestSuite) TestVerifyExpiredToken() {
	user := suite.seedUser("partner@test.com", true)
	raw := suite.issueToken(user, -1*time.Minute)

	_, err := suite.service.VerifyToken(raw)
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyAuthLinkInvalid, be.Key)
}

func (suite *AuthServiceTestSuite) TestVerifyBogusToken() {
	_, err := suite.service.VerifyToken("not-a-real-token")
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyAuthLinkInvalid, be.Key)
}

func (suite *AuthServiceTestSuite) TestVerifyDeactivatedUser() {
	user := suite.seedUser("partner@test.com", true)
	raw := suite.issueToken(user, 15*time.Minute)

	suite.Require().NoError(suite.db.Model(user).Update("active", false).Error)

	_, err := suite.service.VerifyToken(raw)
	be, ok := AsBusinessError(err)
	suite.Require().True(ok)
	suite.Equal(i18n.KeyAuthLinkInvalid, be.Key)
}

func (suite *AuthServiceTestSuite) TestSignOutDeletesSession() {
	user := suite.seedUser("partner@test.com", true)
	raw := suite.issueToken(user, 15*time.Minute)

	result, err := suite.service.VerifyToken(raw)
	suite.Require().NoError(err)

	claims, err := utils.ValidateSessionJWT(result.Token)
	suite.Require().NoError(err)

	var session models.Session
	suite.Require().NoError(suite.db.First(&session, "id = ?", claims.SessionID).Error)

	suite.Require().NoError(suite.service.SignOut(session.ID))

	err = suite.db.First(&session, "id = ?", claims.SessionID).Error
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
