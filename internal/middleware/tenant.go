// internal/middleware/tenant.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/utils"
)

// TenantAccessRequired restricts tenant reads to the caller's subtree. Admin
// sessions may query any tenant; a partner session may query its own tenant,
// its customers, and partners directly under it. Runs after AuthRequired on
// routes carrying a tenant :id param.
func TenantAccessRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := utils.GetRoleFromContext(c); role == string(models.UserRoleAdmin) {
			c.Next()
			return
		}

		own, ok := utils.GetPartnerIDFromContext(c)
		if !ok {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}

		id := c.Param("id")
		if id == own {
			c.Next()
			return
		}

		var count int64
		err := db.Model(&models.Customer{}).
			Where("acronis_id = ? AND partner_acronis_id = ?", id, own).
			Count(&count).Error
		if err == nil && count > 0 {
			c.Next()
			return
		}

		err = db.Model(&models.Partner{}).
			Where("acronis_id = ? AND parent_acronis_id = ?", id, own).
			Count(&count).Error
		if err == nil && count > 0 {
			c.Next()
			return
		}

		utils.ForbiddenResponse(c)
		c.Abort()
	}
}
