// internal/models/license.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// License is a purchasable software unit tracked with a serial number and an
// append-only assignment history.
type License struct {
	BaseModel
	SerialNo          string     `json:"serialNo" gorm:"uniqueIndex;size:50;not null"`
	Key               string     `json:"key" gorm:"uniqueIndex;size:50;not null"`
	ProductID         string     `json:"productId" gorm:"size:50;index;not null"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	PartnerAcronisID  *string    `json:"partnerAcronisId,omitempty" gorm:"size:36;index"`
	CustomerAcronisID *string    `json:"customerAcronisId,omitempty" gorm:"size:36;index"`
	AssignedAt        *time.Time `json:"assignedAt,omitempty"`
	ActivatedAt       *time.Time `json:"activatedAt,omitempty"`
	Partial           bool       `json:"partial" gorm:"default:false"`

	History []LicenseHistory `json:"history,omitempty" gorm:"foreignKey:LicenseID"`
}

// LicenseHistory is an immutable audit row, one per assignment event.
// Rows are only ever inserted.
type LicenseHistory struct {
	ID                       uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	LicenseID                uuid.UUID     `json:"licenseId" gorm:"type:uuid;index;not null"`
	PartnerAcronisID         string        `json:"partnerAcronisId" gorm:"size:36"`
	PreviousPartnerAcronisID string        `json:"previousPartnerAcronisId" gorm:"size:36"`
	Action                   LicenseAction `json:"action" gorm:"type:varchar(30);not null"`
	CreatedBy                string        `json:"createdBy" gorm:"size:255"`
	CreatedAt                time.Time     `json:"createdAt"`
}

func (h *LicenseHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
