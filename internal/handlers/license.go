// internal/handlers/license.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type LicenseHandler struct {
	licenseService *services.LicenseService
}

func NewLicenseHandler(licenseService *services.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService}
}

// POST /api/license
func (h *LicenseHandler) Create(c *gin.Context) {
	var req services.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.licenseService.Create(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyLicenseCreated)
}

// GET /api/license with owner filters. Partner sessions only see their own
// licenses.
func (h *LicenseHandler) List(c *gin.Context) {
	filter := services.LicenseFilter{
		PartnerAcronisID:  c.Query("partnerAcronisId"),
		CustomerAcronisID: c.Query("customerAcronisId"),
		ProductID:         c.Query("productId"),
		Unassigned:        c.Query("unassigned") == "true",
	}

	if role, _ := utils.GetRoleFromContext(c); role != string(models.UserRoleAdmin) {
		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			return
		}
		filter.PartnerAcronisID = own
		filter.Unassigned = false
	}

	result, err := h.licenseService.List(filter, utils.GetPaginationParams(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SetPaginationHeaders(c, *result)
	utils.SuccessResponse(c, result)
}

// GET /api/license/:id
func (h *LicenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	license, err := h.licenseService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, license)
}

// ownerScope returns the partner id license mutations must be limited to.
// Admin sessions are unscoped.
func ownerScope(c *gin.Context) (string, bool) {
	if role, _ := utils.GetRoleFromContext(c); role == string(models.UserRoleAdmin) {
		return "", true
	}
	return utils.GetPartnerIDFromContext(c)
}

// PUT /api/license/:id/:partial
func (h *LicenseHandler) SetPartial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	partialParam := c.Param("partial")
	if partialParam != "true" && partialParam != "false" {
		utils.ValidationErrorResponse(c, "partial")
		return
	}

	scope, ok := ownerScope(c)
	if !ok {
		utils.ForbiddenResponse(c)
		return
	}

	if _, err := h.licenseService.SetPartial(id, partialParam == "true", actor(c), scope); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyLicenseUpdated)
}

// PUT /api/license/assign. Partner sessions can only move licenses they
// currently own.
func (h *LicenseHandler) Assign(c *gin.Context) {
	var req services.AssignLicensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	scope, ok := ownerScope(c)
	if !ok {
		utils.ForbiddenResponse(c)
		return
	}

	count, err := h.licenseService.Assign(&req, actor(c), scope)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyLicenseAssigned, count)
}

// PUT /api/admin/license/assign
func (h *LicenseHandler) AssignFirst(c *gin.Context) {
	var req services.AssignLicensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	count, err := h.licenseService.AssignFirst(&req, actor(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyLicenseAssigned, count)
}
