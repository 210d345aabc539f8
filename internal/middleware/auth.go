package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

// AuthMiddleware accepts a bearer token only while its session is alive;
// a logged out or expired session makes the token useless.
func AuthMiddleware(signer *auth.TokenSigner, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		claims, err := signer.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		if _, err := sessions.Get(claims.SessionID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(auth.ContextSessionID, claims.SessionID)
		c.Set(auth.ContextIDNumber, claims.IDNumber)
		c.Set(auth.ContextRole, claims.Role)
		c.Next()
	}
}
