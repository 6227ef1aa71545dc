package authorization

import (
	"github.com/gin-gonic/gin"

	"saigonbistro/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireStaffOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsStaffOrAdmin() {
			c.JSON(403, gin.H{
				"error": "staff or admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
