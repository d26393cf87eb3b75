// Package main is the entry point for the NextCourse API server.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ffauzan/nc-api/internal/cache"
	"github.com/ffauzan/nc-api/internal/config"
	"github.com/ffauzan/nc-api/internal/handlers"
	"github.com/ffauzan/nc-api/internal/logger"
	"github.com/ffauzan/nc-api/internal/metrics"
	"github.com/ffauzan/nc-api/internal/repository"
	"github.com/ffauzan/nc-api/internal/routes"
	"github.com/ffauzan/nc-api/internal/service"
	ncredis "github.com/ffauzan/nc-api/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// How often the background warmer refreshes the featured-courses cache.
const featuredWarmInterval = 10 * time.Minute

// @title NextCourse API
// @version 1.0
// @description Course catalog and recommendation service
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	appLog, err := logger.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}

	// Initialize database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		appLog.Fatal("Failed to connect to database: ", err)
	}

	// Initialize cache; Redis is required in production, optional otherwise
	appCache := cache.New(nil)
	if cfg.RedisURL != "" {
		client, err := ncredis.NewClient(context.Background(), cfg.RedisURL)
		if err != nil {
			appLog.Fatal("Failed to connect to redis: ", err)
		}
		appCache = cache.New(client)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	authService := service.NewAuthService(userRepo, jwtService)
	recommender := service.NewRecommender(courseRepo)
	courseService := service.NewCourseService(courseRepo, recommender, appCache, appLog)
	profileService := service.NewProfileService(userRepo, prefRepo, interactionRepo, courseRepo)

	if appCache.Enabled() {
		go warmFeaturedCache(courseService, appLog)
	}

	// Setup router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	m := metrics.New(prometheus.DefaultRegisterer)

	routes.Setup(router, cfg, jwtService, m, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Course:  handlers.NewCourseHandler(courseService),
		Profile: handlers.NewProfileHandler(profileService),
		Health:  handlers.NewHealthHandler(db, appCache),
	})

	// Start server
	appLog.Info("Starting NextCourse API on port ", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		appLog.Fatal("Failed to start server: ", err)
	}
}

// warmFeaturedCache keeps the featured-courses cache fresh. It runs once at
// startup and then on a fixed ticker.
func warmFeaturedCache(courseService service.CourseService, appLog logger.Logger) {
	warm := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := courseService.WarmFeaturedCache(ctx); err != nil {
			appLog.Warn("Failed to warm featured course cache: ", err)
		}
	}

	warm()

	ticker := time.NewTicker(featuredWarmInterval)
	defer ticker.Stop()

	for range ticker.C {
		warm()
	}
}
