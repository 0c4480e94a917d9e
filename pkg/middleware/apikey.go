package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"placefinder/pkg/utils"
)

// APIKeyMiddleware checks the X-API-Key header against the configured key.
// An empty configured key disables the check.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or missing API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
