// internal/services/license_service.go
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
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type LicenseService struct {
	db *gorm.DB
}

func NewLicenseService(db *gorm.DB) *LicenseService {
	return &LicenseService{db: db}
}

type CreateLicenseRequest struct {
	SerialNo  string     `json:"serialNo" binding:"required"`
	Key       string     `json:"key" binding:"required"`
	ProductID string     `json:"productId" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type AssignLicensesRequest struct {
	IDs            []uuid.UUID      `json:"ids" binding:"required,min=1"`
	Kind           models.OwnerKind `json:"kind" binding:"required,oneof=partner customer"`
	OwnerAcronisID string           `json:"ownerAcronisId" binding:"required"`
}

type LicenseFilter struct {
	PartnerAcronisID  string
	CustomerAcronisID string
	ProductID         string
	Unassigned        bool
}

func (s *LicenseService) Create(req *CreateLicenseRequest, actor string) (*models.License, error) {
	license := &models.License{
		SerialNo:  strings.TrimSpace(req.SerialNo),
		Key:       strings.TrimSpace(req.Key),
		ProductID: req.ProductID,
		ExpiresAt: req.ExpiresAt,
	}
	license.CreatedBy = actor

	if err := s.db.Create(license).Error; err != nil {
		if isDuplicateError(err) {
			return nil, NewBusinessError(i18n.KeyLicenseDuplicate)
		}
		return nil, err
	}

	return license, nil
}

func (s *LicenseService) GetByID(id uuid.UUID) (*models.License, error) {
	var license models.License
	err := s.db.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&license, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyLicenseNotFound)
		}
		return nil, err
	}
	return &license, nil
}

func (s *LicenseService) List(filter LicenseFilter, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.License{})

	if filter.PartnerAcronisID != "" {
		query = query.Where("partner_acronis_id = ?", filter.PartnerAcronisID)
	}
	if filter.CustomerAcronisID != "" {
		query = query.Where("customer_acronis_id = ?", filter.CustomerAcronisID)
	}
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Unassigned {
		query = query.Where("partner_acronis_id IS NULL AND customer_acronis_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	query = utils.ApplySort(query, params, []string{"created_at", "serial_no", "product_id", "expires_at"})

	var licenses []models.License
	if err := utils.ApplyPagination(query, params).Find(&licenses).Error; err != nil {
		return nil, err
	}

	result := utils.CreatePaginationResult(licenses, total, params)
	return &result, nil
}

// SetPartial flips the partial-use flag of a single license. A non-empty
// scope limits the lookup to licenses owned by that partner, so foreign ids
// surface as not found.
func (s *LicenseService) SetPartial(id uuid.UUID, partial bool, actor, scope string) (*models.License, error) {
	query := s.db.Where("id = ?", id)
	if scope != "" {
		query = query.Where("partner_acronis_id = ?", scope)
	}

	var license models.License
	if err := query.First(&license).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyLicenseNotFound)
		}
		return nil, err
	}

	license.Partial = partial
	license.UpdatedBy = actor
	if err := s.db.Save(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

// Assign moves ownership of a set of licenses in one transaction: snapshot
// the previous owners, apply the bulk update, then insert one history row per
// license. Zero updated rows is a business failure, not a fault; nothing is
// committed in that case. A non-empty scope restricts the batch to licenses
// currently owned by that partner, so foreign ids count as misses.
func (s *LicenseService) Assign(req *AssignLicensesRequest, actor, scope string) (int64, error) {
	return s.assign(req, actor, scope, false)
}

// AssignFirst is the stock intake variant: licenses leave the unassigned pool
// for the first time and the history rows record that explicitly.
func (s *LicenseService) AssignFirst(req *AssignLicensesRequest, actor string) (int64, error) {
	return s.assign(req, actor, "", true)
}

func (s *LicenseService) assign(req *AssignLicensesRequest, actor, scope string, first bool) (int64, error) {
	var updated int64

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		batch := tx.Where("id IN ?", req.IDs)
		if scope != "" {
			batch = batch.Where("partner_acronis_id = ?", scope)
		}

		var previous []models.License
		if err := batch.Select("id", "partner_acronis_id").
			Find(&previous).Error; err != nil {
			return err
		}

		now := time.Now()
		values := map[string]interface{}{
			"updated_at": now,
			"updated_by": actor,
		}
		switch req.Kind {
		case models.OwnerKindPartner:
			values["partner_acronis_id"] = req.OwnerAcronisID
			values["assigned_at"] = now
		case models.OwnerKindCustomer:
			values["customer_acronis_id"] = req.OwnerAcronisID
			values["activated_at"] = now
		}

		update := tx.Model(&models.License{}).Where("id IN ?", req.IDs)
		if scope != "" {
			update = update.Where("partner_acronis_id = ?", scope)
		}
		result := update.Updates(values)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		if updated == 0 {
			return NewBusinessError(i18n.KeyLicenseNoneAssigned)
		}
		// Stock intake targets exactly the requested set; a partial hit
		// means stale ids and rolls the whole batch back.
		if first && updated != int64(len(req.IDs)) {
			return NewBusinessError(i18n.KeyLicenseNoneAssigned)
		}

		action := models.LicenseActionAssignment
		if first {
			action = models.LicenseActionFirstAssignment
		} else if req.Kind == models.OwnerKindCustomer {
			action = models.LicenseActionCustomerAssignment
		}

		history := make([]models.LicenseHistory, 0, len(previous))
		for _, lic := range previous {
			var prev string
			if lic.PartnerAcronisID != nil {
				prev = *lic.PartnerAcronisID
			}
			history = append(history, models.LicenseHistory{
				LicenseID:                lic.ID,
				PartnerAcronisID:         req.OwnerAcronisID,
				PreviousPartnerAcronisID: prev,
				Action:                   action,
				CreatedBy:                actor,
			})
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"count": updated,
		"kind":  req.Kind,
		"owner": req.OwnerAcronisID,
		"actor": actor,
	}).Info("Licenses assigned")

	return updated, nil
}
