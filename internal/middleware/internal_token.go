package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// InternalTokenAuth protects the identity webhook with a static bearer
// token shared with the identity provider.
func InternalTokenAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			logWebhookFailure(c, http.StatusInternalServerError, "token_not_configured")
			writeWebhookError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Webhook token is not configured")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logWebhookFailure(c, http.StatusUnauthorized, "missing_auth")
			writeWebhookError(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logWebhookFailure(c, http.StatusUnauthorized, "invalid_auth_format")
			writeWebhookError(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			return
		}

		if parts[1] != expected {
			logWebhookFailure(c, http.StatusForbidden, "invalid_token")
			writeWebhookError(c, http.StatusForbidden, "AUTH_INVALID", "Invalid webhook token")
			return
		}

		c.Next()
	}
}

func writeWebhookError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func logWebhookFailure(c *gin.Context, status int, reason string) {
	log.Printf("webhook_auth status=%d request_id=%s reason=%s", status, requestID(c), reason)
}
