// internal/models/application.go
package models

import "time"

// Application is a partner onboarding request submitted from the public form.
type Application struct {
	BaseModel
	CompanyName     string      `json:"companyName" gorm:"size:255;not null"`
	CompanyType     CompanyType `json:"companyType" gorm:"type:varchar(20);not null"`
	TaxNo           string      `json:"taxNo" gorm:"size:20"`
	TaxOffice       string      `json:"taxOffice" gorm:"size:100"`
	ContactName     string      `json:"contactName" gorm:"size:255;not null"`
	Email           string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone           string      `json:"phone" gorm:"size:30"`
	Address         string      `json:"address" gorm:"type:text"`
	City            string      `json:"city" gorm:"size:100"`
	DocumentURL     string      `json:"documentUrl,omitempty" gorm:"size:512"`
	ApplicationDate time.Time   `json:"applicationDate"`
	ApprovedAt      *time.Time  `json:"approvedAt,omitempty"`
	ApprovedBy      string      `json:"approvedBy,omitempty" gorm:"size:255"`

	// Set when a partner has been created from this application
	Partner *Partner `json:"partner,omitempty" gorm:"foreignKey:ApplicationID"`
}

// DeriveApplicationStatus computes the application lifecycle state from
// approvedAt nullity and partner linkage. The status is never persisted.
func DeriveApplicationStatus(approvedAt *time.Time, hasPartner bool) ApplicationStatus {
	switch {
	case approvedAt == nil:
		return ApplicationStatusWaiting
	case !hasPartner:
		return ApplicationStatusApproved
	default:
		return ApplicationStatusResolved
	}
}

// Status reports the derived state for serialization.
func (a *Application) Status() ApplicationStatus {
	return DeriveApplicationStatus(a.ApprovedAt, a.Partner != nil)
}
