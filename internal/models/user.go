// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a portal account. Accounts are created out-of-band by an admin and
// sign in through an emailed magic link; there is no password.
type User struct {
	BaseModel
	Email            string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name             string   `json:"name" gorm:"size:255"`
	Role             UserRole `json:"role" gorm:"type:varchar(20);not null;default:'partner'"`
	Active           bool     `json:"active" gorm:"default:true"`
	PartnerAcronisID *string  `json:"partnerAcronisId,omitempty" gorm:"size:36;index"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	Sessions []Session `json:"-" gorm:"foreignKey:UserID"`
}

// Session is the server-side record behind a bearer token. Expiry slides
// forward when a request arrives inside the renewal window.
type Session struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	ExpiresAt  time.Time `json:"expiresAt" gorm:"index;not null"`
	LastSeenAt time.Time `json:"lastSeenAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// LoginToken is a single-use magic-link token. Only the sha256 hash is
// stored; the raw token exists only inside the email.
type LoginToken struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	TokenHash  string     `json:"-" gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt  time.Time  `json:"expiresAt" gorm:"not null"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (t *LoginToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
