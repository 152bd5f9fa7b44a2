package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/cache"
	"github.com/SAP-F-2025/sat-results-service/internal/config"
	"github.com/SAP-F-2025/sat-results-service/internal/handlers"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/sat-results-service/internal/services"
	"github.com/SAP-F-2025/sat-results-service/internal/utils"
	"github.com/SAP-F-2025/sat-results-service/internal/validator"
	"github.com/SAP-F-2025/sat-results-service/pkg"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.NewLogger("", nil).Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := utils.NewLogger(cfg.Environment, os.Stdout)
	log.Info("Starting SAT results service",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"gin_mode", cfg.GinMode)

	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pkg.InitDatabase(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	rdb, err := pkg.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	publisher, err := cfg.Events.CreateEventPublisher(log)
	if err != nil {
		log.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	serviceManager := services.NewServiceManager(
		postgres.NewRepository(db),
		cache.NewRedisCache(rdb, log),
		publisher,
		validator.New(),
		log,
		services.ResultsConfig{
			CacheTTL:     cfg.ResultsCacheTTL,
			DebugLogging: !cfg.IsProduction(),
		},
	)

	router := handlers.NewHandlerManager(serviceManager, utils.NewSlogLogger(log)).NewRouter(cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down gracefully", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Shutdown complete")
}
