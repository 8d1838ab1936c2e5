// internal/services/application_service.go
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/database"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type ApplicationService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewApplicationService(db *gorm.DB, notifier *NotificationService) *ApplicationService {
	return &ApplicationService{db: db, notifier: notifier}
}

type CreateApplicationRequest struct {
	CompanyName string `form:"companyName" binding:"required"`
	CompanyType string `form:"companyType" binding:"required,oneof=soleProprietor limited incorporated"`
	TaxNo       string `form:"taxNo" binding:"omitempty,taxno"`
	TaxOffice   string `form:"taxOffice"`
	ContactName string `form:"contactName" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone"`
	Address     string `form:"address"`
	City        string `form:"city"`
	DocumentURL string `form:"-"`
}

type UpdateApplicationRequest struct {
	CompanyName *string `json:"companyName"`
	TaxNo       *string `json:"taxNo" binding:"omitempty,taxno"`
	TaxOffice   *string `json:"taxOffice"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
}

type ConvertToPartnerRequest struct {
	AcronisID       string `json:"acronisId" binding:"required"`
	ParentAcronisID string `json:"parentAcronisId"`
}

// Create stores a new onboarding application from the public form. The
// confirmation email is best effort; a mail failure never loses the record.
func (s *ApplicationService) Create(req *CreateApplicationRequest) (*models.Application, error) {
	application := &models.Application{
		CompanyName:     req.CompanyName,
		CompanyType:     models.CompanyType(req.CompanyType),
		TaxNo:           req.TaxNo,
		TaxOffice:       req.TaxOffice,
		ContactName:     req.ContactName,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		DocumentURL:     req.DocumentURL,
		ApplicationDate: time.Now(),
	}

	if err := s.db.Create(application).Error; err != nil {
		if isDuplicateError(err) {
			return nil, NewBusinessError(i18n.KeyApplicationDuplicateEmail)
		}
		return nil, err
	}

	if err := s.notifier.SendApplicationReceived(application); err != nil {
		logrus.WithError(err).WithField("application_id", application.ID).Warn("Failed to send application received email")
	}

	return application, nil
}

func (s *ApplicationService) GetByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.Preload("Partner").First(&application, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyApplicationNotFound)
		}
		return nil, err
	}
	return &application, nil
}

// List filters by the derived lifecycle status. The SQL predicates mirror
// DeriveApplicationStatus exactly; the pure function stays the single source
// of truth and the serialized rows are derived through it.
func (s *ApplicationService) List(status models.ApplicationStatus) ([]models.Application, error) {
	query := s.db.Model(&models.Application{}).Preload("Partner")

	switch status {
	case models.ApplicationStatusWaiting:
		query = query.Where("approved_at IS NULL")
	case models.ApplicationStatusApproved:
		query = query.Where("approved_at IS NOT NULL").
			Where("id NOT IN (?)", s.db.Model(&models.Partner{}).
				Select("application_id").Where("application_id IS NOT NULL"))
	case models.ApplicationStatusResolved:
		query = query.Where("id IN (?)", s.db.Model(&models.Partner{}).
			Select("application_id").Where("application_id IS NOT NULL"))
	}

	var applications []models.Application
	if err := query.Order("application_date DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (s *ApplicationService) Update(id uuid.UUID, req *UpdateApplicationRequest, actor string) (*models.Application, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		application.CompanyName = *req.CompanyName
	}
	if req.TaxNo != nil {
		application.TaxNo = *req.TaxNo
	}
	if req.TaxOffice != nil {
		application.TaxOffice = *req.TaxOffice
	}
	if req.ContactName != nil {
		application.ContactName = *req.ContactName
	}
	if req.Phone != nil {
		application.Phone = *req.Phone
	}
	if req.Address != nil {
		application.Address = *req.Address
	}
	if req.City != nil {
		application.City = *req.City
	}
	application.UpdatedBy = actor

	if err := s.db.Save(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

// Approve stamps the application once. Re-approving is rejected so the
// original approval record cannot be overwritten.
func (s *ApplicationService) Approve(id uuid.UUID, actor string) (*models.Application, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if application.ApprovedAt != nil {
		return nil, NewBusinessError(i18n.KeyApplicationAlreadyApproved)
	}

	now := time.Now()
	application.ApprovedAt = &now
	application.ApprovedBy = actor
	application.UpdatedBy = actor

	if err := s.db.Save(application).Error; err != nil {
		return nil, err
	}

	if err := s.notifier.SendApplicationApproved(application); err != nil {
		logrus.WithError(err).WithField("application_id", application.ID).Warn("Failed to send application approved email")
	}

	return application, nil
}

// ConvertToPartner creates the partner record for an approved application in
// one transaction, moving the application from approved to resolved. The
// unique application link makes a second conversion a duplicate error.
func (s *ApplicationService) ConvertToPartner(id uuid.UUID, req *ConvertToPartnerRequest, actor string) (*models.Partner, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if application.ApprovedAt == nil {
		return nil, NewBusinessError(i18n.KeyApplicationNotApproved)
	}
	if application.Partner != nil {
		return nil, NewBusinessError(i18n.KeyApplicationAlreadyApproved)
	}

	partner := &models.Partner{
		AcronisID:       strings.TrimSpace(req.AcronisID),
		ParentAcronisID: strings.TrimSpace(req.ParentAcronisID),
		ApplicationID:   &application.ID,
		Name:            application.CompanyName,
		Email:           application.Email,
		Active:          true,
	}
	partner.CreatedBy = actor

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(partner).Error; err != nil {
			if isDuplicateError(err) {
				return NewBusinessError(i18n.KeyPartnerDuplicate)
			}
			return err
		}
		return tx.Model(&models.Application{}).Where("id = ?", application.ID).
			Updates(map[string]interface{}{"updated_by": actor, "updated_at": time.Now()}).Error
	})
	if err != nil {
		return nil, err
	}

	return partner, nil
}
