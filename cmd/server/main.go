package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gateway-discoveries/internal/adapters/http/middleware"
	"gateway-discoveries/internal/adapters/http/routes"
	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/adapters/persistence/repositories"
	"gateway-discoveries/internal/config"
	"gateway-discoveries/internal/core/services"
	"gateway-discoveries/internal/logging"
	"gateway-discoveries/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logging.New(cfg)
	metrics.Init()

	// Connect to Postgres, or run on the in-memory store when no
	// database is configured
	var db *gorm.DB
	if cfg.UseMemoryStore() {
		log.Warn("DATABASE_URL not set, using in-memory store")
	} else {
		db, err = config.ConnectDatabase(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase(db)

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to auto migrate: %v", err)
		}
		log.Info("Database migration completed")
	}

	// Connect to Redis (optional)
	rdb, err := config.ConnectRedis(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Select backends and seed the demo dataset
	repos := repositories.New(db)
	if err := config.NewSeeder(repos, log).Run(context.Background()); err != nil {
		log.Warnf("Seeding failed: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Gateway Discoveries API v1.0",
		ErrorHandler: middleware.ErrorHandler(cfg),
	})

	// Setup middlewares and routes
	middleware.Setup(app, cfg)
	sightingService := routes.Setup(app, repos, db, rdb, cfg, log)

	// Keep the recent-sightings cache warm while Redis is available
	if rdb != nil {
		warmer := services.NewCacheWarmService(sightingService, log)
		if err := warmer.Start(); err != nil {
			log.Warnf("Failed to start cache warmer: %v", err)
		} else {
			defer warmer.Stop()
		}
	}

	// Graceful shutdown
	go gracefulShutdown(app, log)

	// Start server
	log.Infof("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}
	log.Info("Server stopped gracefully")
}
