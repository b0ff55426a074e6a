package middlewares

import (
	"net/http"
	"strings"

	"github.com/Yvancedric/partage-recettes-optimisation/utils"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func setIdentity(c *gin.Context, claims map[string]interface{}) bool {
	id, ok := claims["userId"].(float64)
	if !ok {
		return false
	}
	c.Set("userID", uint(id))
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	return true
}

// AuthMiddleware rejects requests without a valid Bearer access token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if t, _ := claims["type"].(string); t == "refresh" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !setIdentity(c, claims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}

		c.Next()
	}
}

// OptionalAuthMiddleware sets the caller identity when a valid token is
// present and passes anonymous requests through. The recipe catalog is public
// but enriches results for authenticated callers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString != "" {
			if claims, err := utils.ParseToken(tokenString); err == nil {
				if t, _ := claims["type"].(string); t != "refresh" {
					setIdentity(c, claims)
				}
			}
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id, or 0 for anonymous callers.
func CallerID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
