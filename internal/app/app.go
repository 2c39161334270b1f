package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "reel-bites/internal/controller/http"
	"reel-bites/internal/repo/persistent"
	"reel-bites/internal/usecase"
	"reel-bites/pkg/config"
	"reel-bites/pkg/jwt"
	"reel-bites/pkg/logger"
	"reel-bites/pkg/middleware"
	"reel-bites/pkg/queue"
	"reel-bites/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "reel-bites/internal/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	partnerRepo := persistent.NewFoodPartnerRepository(db)
	foodRepo := persistent.NewFoodRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, partnerRepo, jwtService, log)
	foodUseCase := usecase.NewFoodUseCase(foodRepo, interactionRepo, s3Client, redisClient, queueClient, log, cfg.MaxVideoSizeBytes)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, redisClient, log)
	partnerUseCase := usecase.NewPartnerUseCase(partnerRepo, foodRepo, log)

	// Initialize HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase)
	foodHandler := appHTTP.NewFoodHandler(foodUseCase, interactionUseCase, log)
	partnerHandler := appHTTP.NewPartnerHandler(partnerUseCase)

	// Setup router
	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxVideoSizeBytes

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	auth := api.Group("/auth")
	{
		auth.POST("/user/register", authHandler.RegisterUser)
		auth.POST("/user/login", authHandler.LoginUser)
		auth.GET("/user/logout", authHandler.LogoutUser)
		auth.POST("/foodpartner/register", authHandler.RegisterFoodPartner)
		auth.POST("/foodpartner/login", authHandler.LoginFoodPartner)
		auth.GET("/foodpartner/logout", authHandler.LogoutFoodPartner)
	}

	food := api.Group("/food")
	{
		food.GET("", middleware.OptionalAuthMiddleware(jwtService), foodHandler.ListFeed)
		food.POST("", middleware.AuthMiddleware(jwtService, jwt.ActorFoodPartner), foodHandler.CreateFood)
		food.POST("/like", middleware.AuthMiddleware(jwtService, jwt.ActorUser), foodHandler.ToggleLike)
		food.POST("/save", middleware.AuthMiddleware(jwtService, jwt.ActorUser), foodHandler.ToggleSave)
		food.GET("/saved", middleware.AuthMiddleware(jwtService, jwt.ActorUser), foodHandler.ListSaved)
	}

	partner := api.Group("/foodpartner")
	{
		partner.GET("/:id", partnerHandler.GetProfile)
		partner.PATCH("/:id", middleware.AuthMiddleware(jwtService, jwt.ActorFoodPartner), partnerHandler.UpdateProfile)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Reel bites service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Service exited")
}
