// internal/services/auth_service.go
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

// AuthService implements passwordless sign-in: an emailed single-use link
// that exchanges for a bearer token backed by a server-side session row.
type AuthService struct {
	db       *gorm.DB
	config   *config.Config
	notifier *NotificationService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, notifier *NotificationService) *AuthService {
	return &AuthService{db: db, config: cfg, notifier: notifier}
}

type SignInRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RequestSignIn issues a magic link for an active account. Unknown or
// inactive emails are silently ignored; the endpoint's response is identical
// either way so account existence cannot be probed.
func (s *AuthService) RequestSignIn(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.First(&user, "email = ? AND active = ?", email, true).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}

	raw, err := utils.GenerateLoginToken()
	if err != nil {
		return err
	}

	loginToken := &models.LoginToken{
		UserID:    user.ID,
		TokenHash: utils.HashString(raw),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.LoginTokenTTL) * time.Minute),
	}
	if err := s.db.Create(loginToken).Error; err != nil {
		return err
	}

	if err := s.notifier.SendSignInLink(&user, raw); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to send sign-in link")
		return err
	}

	return nil
}

// VerifyToken consumes a magic-link token and opens a session. Consumption
// and expiry are checked in one predicate so a replayed or stale link fails
// the same way as a bogus one.
func (s *AuthService) VerifyToken(raw string) (*VerifyResult, error) {
	hash := utils.HashString(raw)
	now := time.Now()

	var loginToken models.LoginToken
	err := s.db.First(&loginToken,
		"token_hash = ? AND consumed_at IS NULL AND expires_at > ?", hash, now).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewBusinessError(i18n.KeyAuthLinkInvalid)
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ? AND active = ?", loginToken.UserID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewBusinessError(i18n.KeyAuthLinkInvalid)
		}
		return nil, err
	}

	result := s.db.Model(&models.LoginToken{}).
		Where("id = ? AND consumed_at IS NULL", loginToken.ID).
		Update("consumed_at", now)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race against a concurrent verify of the same link.
		return nil, NewBusinessError(i18n.KeyAuthLinkInvalid)
	}

	session := &models.Session{
		UserID:     user.ID,
		ExpiresAt:  now.Add(time.Duration(s.config.Session.LifetimeHours) * time.Hour),
		LastSeenAt: now,
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}

	var partnerAcronisID string
	if user.PartnerAcronisID != nil {
		partnerAcronisID = *user.PartnerAcronisID
	}

	token, err := utils.GenerateSessionJWT(session.ID, user.ID, user.Email,
		string(user.Role), partnerAcronisID, s.config.Session.LifetimeHours)
	if err != nil {
		return nil, err
	}

	s.db.Model(&user).Update("last_login_at", now)

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "session_id": session.ID}).Info("User signed in")

	return &VerifyResult{Token: token, User: &user}, nil
}

func (s *AuthService) SignOut(sessionID uuid.UUID) error {
	return s.db.Delete(&models.Session{}, "id = ?", sessionID).Error
}

func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}
