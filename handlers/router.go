package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/config"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/handler"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/middleware"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/response"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Restaurants service.Service
	Storage     StorageStatus
	// DevelopmentMode exposes raw error detail in failure envelopes.
	DevelopmentMode bool
	RateLimit       config.RateLimitConfig
	// Redis backs the distributed rate limiter when RateLimit.UseRedis is set.
	Redis *redis.Client
	// Metrics mounts /metrics when set.
	Metrics bool
}

// NewRouter assembles the gin engine: middleware, restaurant routes, health,
// readiness, docs and the 404 fallback.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	// "/api/restaurants/" is an unknown route, not a redirect target.
	r.RedirectTrailingSlash = false

	r.Use(middleware.Recovery(d.DevelopmentMode))
	r.Use(middleware.RequestID())
	r.Use(logger.Middleware())
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.KeyRequestID},
		ExposeHeaders:   []string{"Content-Length", middleware.KeyRequestID},
		MaxAge:          12 * time.Hour,
	}))

	if d.RateLimit.Enabled {
		if d.RateLimit.UseRedis && d.Redis != nil {
			win := time.Duration(d.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(d.Redis, d.RateLimit.RPS, d.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(d.RateLimit.RPS, d.RateLimit.Burst))
		}
	}

	RegisterHealth(r, d.Storage)
	RegisterSwagger(r)
	if d.Metrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	handler.New(d.Restaurants, d.DevelopmentMode).Register(&r.RouterGroup)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Fail(fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path), "", false))
	})
	return r
}
