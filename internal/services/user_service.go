// internal/services/user_service.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Email            string  `json:"email" binding:"required,email"`
	Name             string  `json:"name" binding:"required"`
	Role             string  `json:"role" binding:"required,oneof=admin partner"`
	PartnerAcronisID *string `json:"partnerAcronisId"`
}

type UpdateUserRequest struct {
	Name             *string `json:"name"`
	Role             *string `json:"role" binding:"omitempty,oneof=admin partner"`
	Active           *bool   `json:"active"`
	PartnerAcronisID *string `json:"partnerAcronisId"`
}

func (s *UserService) Create(req *CreateUserRequest, actor string) (*models.User, error) {
	if req.Role == string(models.UserRolePartner) {
		if req.PartnerAcronisID == nil || *req.PartnerAcronisID == "" {
			return nil, NewBusinessError(i18n.KeyPartnerNotFound)
		}
		var count int64
		if err := s.db.Model(&models.Partner{}).
			Where("acronis_id = ?", *req.PartnerAcronisID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, NewBusinessError(i18n.KeyPartnerNotFound)
		}
	}

	user := &models.User{
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Name:             req.Name,
		Role:             models.UserRole(req.Role),
		Active:           true,
		PartnerAcronisID: req.PartnerAcronisID,
	}
	user.CreatedBy = actor

	if err := s.db.Create(user).Error; err != nil {
		if isDuplicateError(err) {
			return nil, NewBusinessError(i18n.KeyUserDuplicate)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewNotFoundError(i18n.KeyUserNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List(partnerAcronisID string) ([]models.User, error) {
	query := s.db.Model(&models.User{})
	if partnerAcronisID != "" {
		query = query.Where("partner_acronis_id = ?", partnerAcronisID)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update edits an account. Deactivation takes effect on the next request of
// any live session, not only at the next sign-in.
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest, actor string) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.PartnerAcronisID != nil {
		user.PartnerAcronisID = req.PartnerAcronisID
	}
	user.UpdatedBy = actor

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	if req.Active != nil && !*req.Active {
		// Drop live sessions so the account is locked out immediately.
		if err := s.db.Delete(&models.Session{}, "user_id = ?", user.ID).Error; err != nil {
			return nil, err
		}
	}

	return user, nil
}
