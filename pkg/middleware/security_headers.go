package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the usual hardening headers on every response.
// Uploaded images are fetched by the frontend from another origin, so the
// resource policy stays cross-origin.
func SecurityHeaders() gin.HandlerFunc {
	headers := secure.New(secure.Config{
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   "default-src 'self'; base-uri 'self'; frame-ancestors 'self'; object-src 'none'",
		ReferrerPolicy:          "no-referrer",
	})
	return func(c *gin.Context) {
		c.Header("Cross-Origin-Resource-Policy", "cross-origin")
		headers(c)
	}
}
