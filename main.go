package main

import (
	"log"

	"exercise-tracker-be/internal/cache"
	"exercise-tracker-be/internal/config"
	"exercise-tracker-be/internal/controllers"
	"exercise-tracker-be/internal/database"
	"exercise-tracker-be/internal/middleware"
	"exercise-tracker-be/internal/repository"
	"exercise-tracker-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	exerciseService := service.NewExerciseService(exerciseRepo, userRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	exerciseController := controllers.NewExerciseController(exerciseService)

	// Initialize rate limiter
	apiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// Landing page with the submission forms
	router.StaticFile("/", "./public/index.html")

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with rate limiting
	api := router.Group("/api")
	api.Use(apiRateLimiter.LimitMiddleware())
	{
		api.POST("/users", userController.CreateUser)
		api.GET("/users", userController.ListUsers)
		api.POST("/users/:_id/exercises", exerciseController.CreateExercise)
		api.GET("/users/:_id/logs", exerciseController.ListLogs)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	router.Run(":" + cfg.Port)
}
