// internal/models/partner.go
package models

import "github.com/google/uuid"

// Partner is a reseller organization mirrored by an external cloud tenant.
type Partner struct {
	BaseModel
	AcronisID       string     `json:"acronisId" gorm:"uniqueIndex;size:36;not null"`
	ParentAcronisID string     `json:"parentAcronisId" gorm:"size:36;index"`
	ApplicationID   *uuid.UUID `json:"applicationId,omitempty" gorm:"type:uuid;uniqueIndex"`
	Name            string     `json:"name" gorm:"size:255;not null"`
	Email           string     `json:"email" gorm:"size:255"`
	Active          bool       `json:"active" gorm:"default:true"`

	// Relationships
	Application *Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	Customers   []Customer   `json:"customers,omitempty" gorm:"foreignKey:PartnerAcronisID;references:AcronisID"`
	Users       []User       `json:"users,omitempty" gorm:"foreignKey:PartnerAcronisID;references:AcronisID"`
}

// Customer is an end customer under a partner.
type Customer struct {
	BaseModel
	AcronisID        string `json:"acronisId" gorm:"uniqueIndex;size:36;not null"`
	PartnerAcronisID string `json:"partnerAcronisId" gorm:"size:36;index;not null"`
	Name             string `json:"name" gorm:"size:255;not null"`
	Active           bool   `json:"active" gorm:"default:true"`
}
