package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yearcompass/internal/config"
)

// AuthMiddleware validates the bearer token from the external auth provider
// and attaches the user id to the request context. Sign-up and login live
// with the provider; this service only verifies ownership.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Missing or invalid Authorization header"}})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, claims, err := ParseToken(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid or expired token"}})
			return
		}

		c.Set("userId", userID)
		if claims.Email != "" {
			c.Set("email", claims.Email)
		}
		c.Next()
	}
}

// UserID extracts the authenticated user id from the gin context.
func UserID(c *gin.Context) (string, bool) {
	idVal, exists := c.Get("userId")
	if !exists {
		return "", false
	}
	id, ok := idVal.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
