package middleware

import (
	"net/http"
	"strings"

	"folio_backend/internal/auth"
	"folio_backend/internal/logger"
	"folio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token once per request and attaches the
// verified principal to the gin context. Handlers never resolve identity
// themselves; mutations read the owner id from the principal.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "UNAUTHORIZED",
				"domain":  "auth",
				"message": "Authorization header missing or invalid",
			}})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "INVALID_TOKEN",
				"domain":  "auth",
				"message": "Invalid or expired token",
			}})
			return
		}

		c.Set(string(contextkeys.PrincipalContextKey), principal)
		c.Request = c.Request.WithContext(
			logger.WithUserID(c.Request.Context(), principal.UserID))
		c.Next()
	}
}
