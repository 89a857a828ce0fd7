package middleware

import (
	"crypto/subtle"
	"net/http"

	"studio_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret compares the X-Webhook-Secret header in constant time.
// An empty server secret rejects every request.
func WebhookSecret(secret string, log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.webhook")
	if secret == "" {
		log.Warn("WEBHOOK_SECRET not set, secret-gated routes reject all calls")
	}
	return func(c *gin.Context) {
		got := c.GetHeader(WebhookSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			log.Warn("webhook secret rejected",
				zap.String("request_id", RequestIDFromContext(c)),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()))
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid webhook secret", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
