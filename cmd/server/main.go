package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yms2/bizinfo-backend/config"
	"github.com/yms2/bizinfo-backend/internal/app/controller"
	"github.com/yms2/bizinfo-backend/internal/app/repository"
	"github.com/yms2/bizinfo-backend/internal/app/service"
	"github.com/yms2/bizinfo-backend/internal/db"
	"github.com/yms2/bizinfo-backend/internal/router"
	"github.com/yms2/bizinfo-backend/internal/scheduler"
	"github.com/yms2/bizinfo-backend/internal/storage"
	"github.com/yms2/bizinfo-backend/pkg/dateutil"
	"github.com/yms2/bizinfo-backend/pkg/logger"
	"github.com/yms2/bizinfo-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Business Info Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database in development (optional)
	if cfg.Server.Environment == "development" {
		if err := db.Seed(); err != nil {
			logger.Warn("Failed to seed database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Optional Redis-backed rate limiting
	rateLimitEnabled := false
	if cfg.Redis.Host != "" {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, search rate limiting disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			rateLimitEnabled = true
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
		}
	}

	// Initialize repositories and services
	businessInfoRepo := repository.NewBusinessInfoRepository(db.GetDB())
	formatter := dateutil.NewFormatter(cfg.Export.DateLayout)

	var uploader service.ReportUploader
	if cfg.S3.Bucket != "" {
		uploader = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	}

	businessInfoService := service.NewBusinessInfoService(businessInfoRepo, formatter)
	exportService := service.NewExportService(businessInfoRepo, formatter, uploader)

	// Initialize controllers
	businessInfoController := controller.NewBusinessInfoController(businessInfoService, exportService)

	// Daily report scheduler (only when an upload target exists)
	if uploader != nil {
		reportScheduler := scheduler.NewReportScheduler(exportService, cfg.Export.ReportCron)
		if err := reportScheduler.Start(); err != nil {
			logger.Warn("Report scheduler disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer reportScheduler.Stop()
		}
	}

	// Setup router
	r := router.NewRouter(businessInfoController, cfg, rateLimitEnabled)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
