// internal/handlers/parasut.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type ParasutHandler struct {
	parasutService *services.ParasutService
}

func NewParasutHandler(parasutService *services.ParasutService) *ParasutHandler {
	return &ParasutHandler{parasutService: parasutService}
}

// GET /api/parasut/contacts/:id
func (h *ParasutHandler) GetContact(c *gin.Context) {
	contact, err := h.parasutService.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, contact)
}

// GET /api/parasut/salesInvoices?contactId=
func (h *ParasutHandler) ListSalesInvoices(c *gin.Context) {
	contactID := c.Query("contactId")
	if contactID == "" {
		utils.ValidationErrorResponse(c, "contactId")
		return
	}

	invoices, err := h.parasutService.GetSalesInvoicesByContact(c.Request.Context(), contactID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, invoices)
}

// GET /api/parasut/salesInvoices/:id
func (h *ParasutHandler) GetSalesInvoice(c *gin.Context) {
	invoice, err := h.parasutService.GetSalesInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, invoice)
}
