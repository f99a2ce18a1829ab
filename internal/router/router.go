package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yms2/bizinfo-backend/config"
	"github.com/yms2/bizinfo-backend/internal/app/controller"
	"github.com/yms2/bizinfo-backend/internal/middleware"
)

type Router struct {
	businessInfoController *controller.BusinessInfoController
	config                 *config.Config
	rateLimitEnabled       bool
}

func NewRouter(
	businessInfoController *controller.BusinessInfoController,
	cfg *config.Config,
	rateLimitEnabled bool,
) *Router {
	return &Router{
		businessInfoController: businessInfoController,
		config:                 cfg,
		rateLimitEnabled:       rateLimitEnabled,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Business Info API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		businessInfo := v1.Group("/business-info")
		if r.rateLimitEnabled {
			businessInfo.Use(middleware.RateLimitMiddleware(r.config.Export.RateLimitPerMinute))
		}
		{
			businessInfo.GET("/search", r.businessInfoController.Search)
			businessInfo.GET("/search/date-range", r.businessInfoController.SearchByDateRange)
			businessInfo.GET("/export", r.businessInfoController.Export)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
