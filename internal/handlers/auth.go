// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/i18n"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/services"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/signin
// Always answers 200 with the same message so account existence cannot be
// probed from this endpoint.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "email")
		return
	}

	if err := h.authService.RequestSignIn(req.Email); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyAuthLinkSent)
}

// GET /api/auth/verify?token=
func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.BadRequestResponse(c, i18n.KeyAuthLinkInvalid)
		return
	}

	result, err := h.authService.VerifyToken(token)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	sessionIDStr, exists := c.Get("session_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}

	sessionID, err := uuid.Parse(sessionIDStr.(string))
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	if err := h.authService.SignOut(sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, i18n.KeyAuthSignedOut)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, user)
}
