package middleware

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultTrustedSuffix = ".vercel.app"

// CORSMiddleware gates browser origins before routing. Requests without an
// Origin header (same-origin or non-browser clients) pass through untouched.
// Credentialed CORS stays disabled; tokens ride in the Authorization header.
func CORSMiddleware() gin.HandlerFunc {
	suffix := os.Getenv("CORS_TRUSTED_SUFFIX")
	if suffix == "" {
		suffix = defaultTrustedSuffix
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return OriginAllowed(origin, suffix)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// OriginAllowed accepts local development origins on any port and deployed
// frontends under the trusted hosting suffix.
func OriginAllowed(origin string, trustedSuffix string) bool {
	if origin == "" {
		return true
	}
	if origin == "http://localhost" || strings.HasPrefix(origin, "http://localhost:") {
		return true
	}
	if strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, trustedSuffix) {
		return true
	}
	return false
}
