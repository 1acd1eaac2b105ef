package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured front-end origins to call the API with the session cookie.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "Accept", "Cache-Control")
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.MaxAge = 12 * time.Hour
	if len(m.corsCfg.AllowedOrigins) == 0 {
		// credentials cannot be combined with a wildcard origin
		cfg.AllowCredentials = false
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.corsCfg.AllowedOrigins
	}
	return cors.New(cfg)
}
