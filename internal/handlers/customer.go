// internal/handlers/customer.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GET /api/customer?partnerAcronisId=
func (h *CustomerHandler) List(c *gin.Context) {
	partnerAcronisID := c.Query("partnerAcronisId")

	if role, _ := utils.GetRoleFromContext(c); role != string(models.UserRoleAdmin) {
		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			return
		}
		partnerAcronisID = own
	}

	customers, err := h.customerService.List(partnerAcronisID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customers)
}

// GET /api/customer/:acronisId
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.GetByAcronisID(c.Param("acronisId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, customer)
}

// POST /api/customer. Partner sessions may only create customers under
// themselves; the body's owner field is overridden.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if role, _ := utils.GetRoleFromContext(c); role != string(models.UserRoleAdmin) {
		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			return
		}
		req.PartnerAcronisID = own
	}

	if _, err := h.customerService.Create(&req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyCustomerCreated)
}

// PUT /api/customer/:acronisId. Partner sessions may only touch their own
// customers; a foreign id reads as not found.
func (h *CustomerHandler) Update(c *gin.Context) {
	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	var scope string
	if role, _ := utils.GetRoleFromContext(c); role != string(models.UserRoleAdmin) {
		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			return
		}
		scope = own
	}

	if _, err := h.customerService.Update(c.Param("acronisId"), &req, actor(c), scope); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyCustomerUpdated)
}
