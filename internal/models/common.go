// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields. The UUID is generated application-side so
// the sqlite driver used in tests does not need gen_random_uuid().
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	CreatedBy string         `json:"createdBy,omitempty" gorm:"size:255"`
	UpdatedAt time.Time      `json:"updatedAt"`
	UpdatedBy string         `json:"updatedBy,omitempty" gorm:"size:255"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRolePartner UserRole = "partner"
)

// ApplicationStatus is derived from approvedAt nullity and partner linkage,
// never stored.
type ApplicationStatus string

const (
	ApplicationStatusWaiting  ApplicationStatus = "waiting"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusResolved ApplicationStatus = "resolved"
)

// OwnerKind selects which ownership field a license assignment targets.
type OwnerKind string

const (
	OwnerKindPartner  OwnerKind = "partner"
	OwnerKindCustomer OwnerKind = "customer"
)

type LicenseAction string

const (
	LicenseActionFirstAssignment    LicenseAction = "firstAssignment"
	LicenseActionAssignment         LicenseAction = "assignment"
	LicenseActionCustomerAssignment LicenseAction = "customerAssignment"
)

type CompanyType string

const (
	CompanyTypeSoleProprietor CompanyType = "soleProprietor"
	CompanyTypeLimited        CompanyType = "limited"
	CompanyTypeIncorporated   CompanyType = "incorporated"
)
