package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"press-maintenance-backend/config"
	"press-maintenance-backend/internal/api"
	"press-maintenance-backend/internal/db"
	"press-maintenance-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "pressd ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		logger.Printf("no configuration at %s, using defaults", configPath)
		cfg = config.Default()
	} else if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	} else {
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	// A store that cannot be opened or provisioned is fatal at startup.
	gormDB, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Database.Driver, err)
	}
	if cfg.Database.Seed {
		if _, err := db.Seed(context.Background(), gormDB); err != nil {
			logger.Fatalf("failed to seed database: %v", err)
		}
	}

	appStore := store.NewGormStore(gormDB)
	logger.Println("data store initialized")

	handler := api.NewHandler(appStore, cfg.Report.Title, cfg.Report.Location)
	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Println("Server gracefully stopped")
}
