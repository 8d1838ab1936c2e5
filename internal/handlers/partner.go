// internal/handlers/partner.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type PartnerHandler struct {
	partnerService *services.PartnerService
}

func NewPartnerHandler(partnerService *services.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService}
}

// GET /api/partner?parentAcronisId=
// Partner sessions are forced onto their own subtree regardless of the query.
func (h *PartnerHandler) List(c *gin.Context) {
	parentAcronisID := c.Query("parentAcronisId")

	if role, _ := utils.GetRoleFromContext(c); role != string(models.UserRoleAdmin) {
		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			return
		}
		parentAcronisID = own
	}

	partners, err := h.partnerService.List(parentAcronisID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, partners)
}

// GET /api/partner/:acronisId
func (h *PartnerHandler) Get(c *gin.Context) {
	partner, err := h.partnerService.GetByAcronisID(c.Param("acronisId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, partner)
}

// POST /api/partner
func (h *PartnerHandler) Create(c *gin.Context) {
	var req services.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.partnerService.Create(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyPartnerCreated)
}

// PUT /api/partner/:acronisId
func (h *PartnerHandler) Update(c *gin.Context) {
	var req services.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.partnerService.Update(c.Param("acronisId"), &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyPartnerUpdated)
}
