// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform API result for failures and mutations. Successful
// reads return raw JSON instead.
type Envelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	OK      bool   `json:"ok"`
}

// SuccessResponse returns raw data for read endpoints.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// MessageResponse returns a localized success envelope for mutations.
func MessageResponse(c *gin.Context, key string, args ...interface{}) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusOK, Envelope{
		Message: i18n.T(lang, key, args...),
		Status:  http.StatusOK,
		OK:      true,
	})
}

// CreatedResponse returns a success envelope with 201.
func CreatedResponse(c *gin.Context, key string, args ...interface{}) {
	lang := GetLangFromContext(c)
	c.JSON(http.StatusCreated, Envelope{
		Message: i18n.T(lang, key, args...),
		Status:  http.StatusCreated,
		OK:      true,
	})
}

// ErrorResponse writes a failure envelope with an already-resolved message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Message: message,
		Status:  statusCode,
		OK:      false,
	})
}

// ErrorKeyResponse writes a failure envelope from a translation key.
func ErrorKeyResponse(c *gin.Context, statusCode int, key string, args ...interface{}) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, statusCode, i18n.T(lang, key, args...))
}

func BadRequestResponse(c *gin.Context, key string, args ...interface{}) {
	ErrorKeyResponse(c, http.StatusBadRequest, key, args...)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorKeyResponse(c, http.StatusUnauthorized, i18n.KeyAuthRequired)
}

func ForbiddenResponse(c *gin.Context) {
	ErrorKeyResponse(c, http.StatusUnauthorized, i18n.KeyAdminAccessDenied)
}

func NotFoundResponse(c *gin.Context, key string, args ...interface{}) {
	ErrorKeyResponse(c, http.StatusNotFound, key, args...)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func ValidationErrorResponse(c *gin.Context, field string) {
	BadRequestResponse(c, i18n.KeyValidationInvalid, field)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if userIDStr, ok := userID.(string); ok {
			return userIDStr, true
		}
	}
	return "", false
}

func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	if email, exists := c.Get("user_email"); exists {
		if emailStr, ok := email.(string); ok {
			return emailStr, true
		}
	}
	return "", false
}

func GetRoleFromContext(c *gin.Context) (string, bool) {
	if role, exists := c.Get("user_role"); exists {
		if roleStr, ok := role.(string); ok {
			return roleStr, true
		}
	}
	return "", false
}

func GetPartnerIDFromContext(c *gin.Context) (string, bool) {
	if id, exists := c.Get("partner_acronis_id"); exists {
		if idStr, ok := id.(string); ok && idStr != "" {
			return idStr, true
		}
	}
	return "", false
}
