package auth

import "github.com/gin-gonic/gin"

// Keys under which the auth middleware stores the caller on the gin context.
const (
	ContextSessionID = "sessionID"
	ContextIDNumber  = "idNumber"
	ContextRole      = "userRole"
)

func SessionID(c *gin.Context) (string, bool) {
	id := c.GetString(ContextSessionID)
	return id, id != ""
}
