// main.go
package main

import (
	"log"

	"movie-logbook/cmd"
	"movie-logbook/internal/data/repository"
	"movie-logbook/internal/realtime"
	"movie-logbook/internal/wire"
	"movie-logbook/pkg/database"
	"movie-logbook/pkg/storage"
	"movie-logbook/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis is optional; without it the change feed stays in-process
	var rdb *redis.Client
	if config.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
		})
		logger.Info("Redis fan-out enabled", zap.String("addr", config.Redis.Addr))
	}

	hub := realtime.NewHub(rdb, logger)
	defer hub.Shutdown()

	// Image bucket on local disk
	bucket, err := storage.NewDiskBucket(config.Storage.Path, "imagens", config.Storage.PublicBaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to init storage bucket", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, hub, bucket, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
