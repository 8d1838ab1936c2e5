// internal/handlers/application.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	storageService     *services.StorageService
}

func NewApplicationHandler(applicationService *services.ApplicationService, storageService *services.StorageService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		storageService:     storageService,
	}
}

// POST /api/application
// Public multipart endpoint: form fields plus an optional tax document.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req services.CreateApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors[0].Field)
		return
	}

	file, header, err := c.Request.FormFile("document")
	if err == nil {
		defer file.Close()

		result, uploadErr := h.storageService.UploadFile(file, header, services.TaxDocumentOptions())
		if uploadErr != nil {
			handleServiceError(c, uploadErr)
			return
		}
		req.DocumentURL = result.URL
	}

	application, err := h.applicationService.Create(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	logrus.WithField("application_id", application.ID).Info("Application received")
	utils.CreatedResponse(c, i18n.KeyApplicationReceived)
}

// GET /api/application?status=waiting|approved|resolved
func (h *ApplicationHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))

	applications, err := h.applicationService.List(status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Attach the derived status so clients never recompute it.
	type applicationView struct {
		models.Application
		Status models.ApplicationStatus `json:"status"`
	}
	views := make([]applicationView, 0, len(applications))
	for _, a := range applications {
		views = append(views, applicationView{Application: a, Status: a.Status()})
	}

	utils.SuccessResponse(c, views)
}

// GET /api/application/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	application, err := h.applicationService.GetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"application": application,
		"status":      application.Status(),
	})
}

// PUT /api/application/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	var req services.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.applicationService.Update(id, &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyApplicationUpdated)
}

// PUT /api/admin/application/:id/approve
func (h *ApplicationHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	if _, err := h.applicationService.Approve(id, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyApplicationApproved)
}

// POST /api/admin/application/:id/partner
func (h *ApplicationHandler) ConvertToPartner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ValidationErrorResponse(c, "id")
		return
	}

	var req services.ConvertToPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "input")
		return
	}

	if _, err := h.applicationService.ConvertToPartner(id, &req, actor(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, i18n.KeyApplicationResolved)
}
