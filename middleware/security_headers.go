package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rrinconline/sticker-lab-backend/config"
)

// SecurityHeadersMiddleware adds the standard hardening headers. HSTS is
// only sent in production.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if cfg.IsProduction() {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
