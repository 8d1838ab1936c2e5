// internal/middleware/auth.go
package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

// AuthRequired validates the bearer token and resolves the server-side
// session before any handler logic runs. Sessions have a fixed lifetime;
// requests arriving inside the renewal window slide the expiry forward.
func AuthRequired(db *gorm.DB, renewWindow, lifetime time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionJWT(parts[1])
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		var session models.Session
		if err := db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		now := time.Now()
		if session.ExpiresAt.Before(now) {
			db.Delete(&session)
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		// The user may have been deactivated after the session was issued.
		var user models.User
		if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil || !user.Active {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		// Sliding renewal
		session.LastSeenAt = now
		if session.ExpiresAt.Sub(now) < renewWindow {
			session.ExpiresAt = now.Add(lifetime)
		}
		db.Save(&session)

		c.Set("session_id", claims.SessionID)
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("partner_acronis_id", claims.PartnerAcronisID)
		c.Next()
	}
}

// AdminRequired gates admin-only routes. Runs after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists || role != string(models.UserRoleAdmin) {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
