// Package routes defines HTTP routes for the NextCourse API.
package routes

import (
	"time"

	"github.com/ffauzan/nc-api/internal/config"
	"github.com/ffauzan/nc-api/internal/handlers"
	"github.com/ffauzan/nc-api/internal/metrics"
	"github.com/ffauzan/nc-api/internal/middleware"
	"github.com/ffauzan/nc-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything Setup needs to register the API surface.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Course  *handlers.CourseHandler
	Profile *handlers.ProfileHandler
	Health  *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, jwtService service.JWTService, m *metrics.Metrics, h Handlers) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig))
	if m != nil {
		router.Use(m.Middleware())
	}

	// Operational endpoints
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)

		me := users.Group("", middleware.RequireAuth(jwtService))
		{
			me.GET("/me", h.Auth.Me)
			me.GET("/me/preferences", h.Profile.GetPreferences)
			me.PUT("/me/preferences", h.Profile.UpdatePreferences)
		}
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", h.Course.List)
		courses.GET("/random", h.Course.Featured)
		courses.GET("/slug/:slug", h.Course.GetBySlug)
		courses.GET("/:id", h.Course.Get)
		courses.GET("/:id/recommendations", h.Course.Recommendations)

		courses.POST("/:id/interactions", middleware.RequireAuth(jwtService), h.Profile.RecordInteraction)
	}
}
