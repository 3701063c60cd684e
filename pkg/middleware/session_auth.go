package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcast/pkg/utils"
)

// SessionAuthMiddleware validates the bearer session token and exposes the
// session id to the handlers behind it.
func SessionAuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateSessionToken(secret, tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Next()
	}
}
