// internal/handlers/acronis.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

// AcronisHandler exposes read-through views of the cloud tenant platform.
// Nothing fetched here is persisted.
type AcronisHandler struct {
	acronisService *services.AcronisService
}

func NewAcronisHandler(acronisService *services.AcronisService) *AcronisHandler {
	return &AcronisHandler{acronisService: acronisService}
}

// GET /api/acronis/tenants/:id/info
func (h *AcronisHandler) GetTenantInfo(c *gin.Context) {
	info, err := h.acronisService.GetTenantInfo(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, info)
}

// GET /api/acronis/tenants/:id/users
func (h *AcronisHandler) GetTenantUsers(c *gin.Context) {
	users, err := h.acronisService.GetTenantUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

// GET /api/acronis/tenants/:id/contacts
func (h *AcronisHandler) GetTenantContacts(c *gin.Context) {
	contacts, err := h.acronisService.GetTenantContacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, contacts)
}

// GET /api/acronis/tenants/:id/locations
func (h *AcronisHandler) GetTenantLocations(c *gin.Context) {
	locations, err := h.acronisService.GetTenantLocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, locations)
}

// GET /api/acronis/tenants/:id/usages
func (h *AcronisHandler) GetTenantUsages(c *gin.Context) {
	usages, err := h.acronisService.GetTenantUsages(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, usages)
}

// GET /api/acronis/tenants/:id/children
func (h *AcronisHandler) GetTenantChildren(c *gin.Context) {
	children, err := h.acronisService.GetTenantChildren(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, children)
}

// GET /api/acronis/tenants/:id/alerts
func (h *AcronisHandler) GetTenantAlerts(c *gin.Context) {
	alerts, err := h.acronisService.GetTenantAlerts(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, alerts)
}

// GET /api/acronis/users/checkLogin?username=
func (h *AcronisHandler) CheckLogin(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.ValidationErrorResponse(c, "username")
		return
	}

	available, err := h.acronisService.CheckLogin(c.Request.Context(), username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"username": username, "available": available})
}
