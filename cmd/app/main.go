package main

import (
	"reel-bites/internal/app"
	"reel-bites/pkg/cache"
	"reel-bites/pkg/config"
	"reel-bites/pkg/database"
	"reel-bites/pkg/logger"
	"reel-bites/pkg/queue"
	"reel-bites/pkg/s3"
)

// @title           Reel Bites API
// @version         1.0
// @description     Food discovery platform where partners publish short video reels and users like and save them.

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The token cookie set on login works as well.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// Redis and RabbitMQ are optional collaborators. The service degrades to
	// uncached, unqueued operation when they are unreachable.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, continuing without events: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
