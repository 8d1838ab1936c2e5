// internal/services/customer_service.go
package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

type CreateCustomerRequest struct {
	AcronisID        string `json:"acronisId" binding:"required"`
	PartnerAcronisID string `json:"partnerAcronisId" binding:"required"`
	Name             string `json:"name" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// Create stores a customer under an existing partner. An unknown partner id
// is a business error so the upstream tenant tree and the local records
// cannot drift apart silently.
func (s *CustomerService) Create(req *CreateCustomerRequest, actor string) (*models.Customer, error) {
	var count int64
	if err := s.db.Model(&models.Partner{}).
		Where("acronis_id = ?", req.PartnerAcronisID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, NewBusinessError(i18n.KeyCustomerUnknownParent)
	}

	customer := &models.Customer{
		AcronisID:        strings.TrimSpace(req.AcronisID),
		PartnerAcronisID: strings.TrimSpace(req.PartnerAcronisID),
		Name:             req.Name,
		Active:           true,
	}
	customer.CreatedBy = actor

	if err := s.db.Create(customer).Error; err != nil {
		if isDuplicateError(err) {
			return nil, NewBusinessError(i18n.KeyCustomerDuplicate)
		}
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) GetByAcronisID(acronisID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.First(&customer, "acronis_id = ?", acronisID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyCustomerNotFound)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) List(partnerAcronisID string) ([]models.Customer, error) {
	query := s.db.Model(&models.Customer{})
	if partnerAcronisID != "" {
		query = query.Where("partner_acronis_id = ?", partnerAcronisID)
	}

	var customers []models.Customer
	if err := query.Order("name ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Update patches a customer. A non-empty scope limits the lookup to
// customers owned by that partner, so foreign ids surface as not found.
func (s *CustomerService) Update(acronisID string, req *UpdateCustomerRequest, actor, scope string) (*models.Customer, error) {
	query := s.db.Where("acronis_id = ?", acronisID)
	if scope != "" {
		query = query.Where("partner_acronis_id = ?", scope)
	}

	var customer models.Customer
	if err := query.First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyCustomerNotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Active != nil {
		customer.Active = *req.Active
	}
	customer.UpdatedBy = actor

	if err := s.db.Save(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
