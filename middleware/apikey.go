package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin routes with a static X-API-KEY header.
func ValidateAPIKey(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-API-KEY") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
