package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
)

func RequireRole(allowedRoles ...auth.PortalType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(auth.ContextRole)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == string(allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
