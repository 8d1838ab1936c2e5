// internal/services/partner_service.go
package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type PartnerService struct {
	db *gorm.DB
}

func NewPartnerService(db *gorm.DB) *PartnerService {
	return &PartnerService{db: db}
}

type CreatePartnerRequest struct {
	AcronisID       string `json:"acronisId" binding:"required"`
	ParentAcronisID string `json:"parentAcronisId"`
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"omitempty,email"`
}

type UpdatePartnerRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Active *bool   `json:"active"`
}

func (s *PartnerService) Create(req *CreatePartnerRequest, actor string) (*models.Partner, error) {
	partner := &models.Partner{
		AcronisID:       strings.TrimSpace(req.AcronisID),
		ParentAcronisID: strings.TrimSpace(req.ParentAcronisID),
		Name:            req.Name,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Active:          true,
	}
	partner.CreatedBy = actor

	if err := s.db.Create(partner).Error; err != nil {
		if isDuplicateError(err) {
			return nil, NewBusinessError(i18n.KeyPartnerDuplicate)
		}
		return nil, err
	}

	return partner, nil
}

func (s *PartnerService) GetByAcronisID(acronisID string) (*models.Partner, error) {
	var partner models.Partner
	err := s.db.Preload("Application").First(&partner, "acronis_id = ?", acronisID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyPartnerNotFound)
		}
		return nil, err
	}
	return &partner, nil
}

// List returns partners, optionally restricted to the children of one parent
// tenant. Partner sessions are always restricted to their own subtree by the
// handler.
func (s *PartnerService) List(parentAcronisID string) ([]models.Partner, error) {
	query := s.db.Model(&models.Partner{})
	if parentAcronisID != "" {
		query = query.Where("parent_acronis_id = ?", parentAcronisID)
	}

	var partners []models.Partner
	if err := query.Order("name ASC").Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (s *PartnerService) Update(acronisID string, req *UpdatePartnerRequest, actor string) (*models.Partner, error) {
	partner, err := s.GetByAcronisID(acronisID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		partner.Name = *req.Name
	}
	if req.Email != nil {
		partner.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Active != nil {
		partner.Active = *req.Active
	}
	partner.UpdatedBy = actor

	if err := s.db.Save(partner).Error; err != nil {
		return nil, err
	}
	return partner, nil
}
