package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"artify-server/config"
	"artify-server/internal/app/http/middleware"
)

// NewRouter builds the engine with the middleware chain and every route mounted.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		gin.Recovery(),
		cors.New(CORSConfig(cfg.CORSOrigins)),
	)
	if cfg.SanitizeInput {
		r.Use(middleware.SanitizeAndCleanInputMiddleware())
	}
	if cfg.EnablePprof {
		pprof.Register(r)
	}

	RegisterRoutes(r, h)
	return r
}

// CORSConfig allows the configured origins. A "*" entry, or an empty list, allows
// every origin with credentials off.
func CORSConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
