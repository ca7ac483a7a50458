package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/telecat/backend/config"
	"github.com/telecat/backend/internal/auth"
	"github.com/telecat/backend/internal/cache"
	"github.com/telecat/backend/internal/database"
	"github.com/telecat/backend/internal/handlers"
	"github.com/telecat/backend/internal/middleware"
	"github.com/telecat/backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed bootstrap admin and default tags
	if err := database.Seed(db.DB, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Connect to Redis
	redis, err := cache.NewRedisClient(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Running without Redis - listings will not be cached")
		redis = nil
	} else {
		defer redis.Close()
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	channelRepo := repository.NewChannelRepository(db)
	tagRepo := repository.NewTagRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(adminRepo, jwtService)
	channelHandler := handlers.NewChannelHandler(channelRepo, tagRepo, redis)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, redis)
	tagHandler := handlers.NewTagHandler(tagRepo, redis)
	adminHandler := handlers.NewAdminHandler(adminRepo)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.GET("/channels", channelHandler.ListChannels)
		api.GET("/channels/:id", channelHandler.GetChannel)
		api.POST("/channels", channelHandler.CreateChannel)

		api.GET("/channels/:id/reviews", reviewHandler.ListChannelReviews)
		api.POST("/channels/:id/reviews", reviewHandler.CreateReview)

		api.GET("/tags", tagHandler.ListTags)
		api.POST("/tags/suggest", tagHandler.SuggestTag)

		api.POST("/admin/login", authHandler.Login)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	{
		// Channel moderation
		admin.GET("/channels/pending", channelHandler.ListPendingChannels)
		admin.POST("/channels/:id/approve", channelHandler.ApproveChannel)
		admin.POST("/channels/:id/reject", channelHandler.RejectChannel)

		// Review moderation
		admin.GET("/reviews/pending", reviewHandler.ListPendingReviews)
		admin.POST("/reviews/:id/approve", reviewHandler.ApproveReview)
		admin.POST("/reviews/:id/reject", reviewHandler.RejectReview)
		admin.DELETE("/reviews/:id", reviewHandler.DeleteReview)

		// Tag management
		admin.GET("/tags", tagHandler.ListAllTags)
		admin.POST("/tags", tagHandler.CreateTag)
		admin.POST("/tags/:id/approve", tagHandler.ApproveTag)
		admin.POST("/tags/:id/reject", tagHandler.RejectTag)
		admin.DELETE("/tags/:id", tagHandler.DeleteTag)

		// Admin account management
		admin.GET("/admins", adminHandler.ListAdmins)
		admin.POST("/admins", adminHandler.CreateAdmin)
		admin.DELETE("/admins/:id", adminHandler.DeleteAdmin)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Starting catalog server on %s (env: %s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
