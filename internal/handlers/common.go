// internal/handlers/common.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

// handleServiceError maps the service error taxonomy onto the response
// envelope: rule violations are 400, missing records 404, upstream
// authentication failures 502, upstream timeouts 504, anything else 500.
func handleServiceError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	if be, ok := services.AsBusinessError(err); ok {
		utils.ErrorResponse(c, http.StatusBadRequest, be.Localize(lang))
		return
	}

	if nfe, ok := services.AsNotFoundError(err); ok {
		utils.NotFoundResponse(c, nfe.Key)
		return
	}

	if ue, ok := services.AsUpstreamError(err); ok {
		switch {
		case ue.Auth:
			utils.ErrorKeyResponse(c, http.StatusBadGateway, i18n.KeyUpstreamAuthFailed)
		case ue.Timeout:
			utils.ErrorKeyResponse(c, http.StatusGatewayTimeout, i18n.KeyUpstreamTimeout, ue.Step)
		default:
			utils.NotFoundResponse(c, i18n.KeyUpstreamNotFound, ue.Step)
		}
		return
	}

	logrus.WithError(err).Error("Unhandled service error")
	utils.InternalErrorResponse(c, "")
}

// actor resolves the audit identity of the current session.
func actor(c *gin.Context) string {
	if email, ok := utils.GetUserEmailFromContext(c); ok {
		return email
	}
	return "system"
}
