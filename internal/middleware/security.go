package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders returns a Gin middleware that sets the privacy-hardening
// headers on every response: deny framing, disable MIME sniffing, suppress
// the Referer header, and opt out of browser interest-cohort tracking.
// Tip pages are meant to be shared, so the headers keep the embedding and
// referral surface as small as possible for visitors.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Permissions-Policy", "interest-cohort=()")
		c.Next()
	}
}
