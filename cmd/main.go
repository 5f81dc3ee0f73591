// Package main provides the entry point for the YouTube Tools service.
// @title YouTube Tools API
// @version 1.0
// @description Resolves YouTube video URLs and returns oEmbed metadata, caption text and timestamped captions.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/denisAlshanov/yttools/docs" // Import for swagger docs
	"github.com/denisAlshanov/yttools/internal/api/handlers"
	"github.com/denisAlshanov/yttools/internal/api/router"
	"github.com/denisAlshanov/yttools/internal/config"
	"github.com/denisAlshanov/yttools/internal/services/youtube"
	"github.com/denisAlshanov/yttools/internal/utils"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	if err := utils.SetLogLevel(cfg.Log.Level); err != nil {
		logger.Warnf("Invalid log level %s, keeping %s", cfg.Log.Level, logger.GetLevel())
	}
	logger.WithField("version", version).Info("Starting YouTube Tools service")

	ytClient := youtube.NewClient(&cfg.YouTube)

	videoHandler := handlers.NewVideoHandler(ytClient)
	healthHandler := handlers.NewHealthHandler(version)

	r := router.NewRouter(cfg, videoHandler, healthHandler)

	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}

	logger.Info("Server shutdown complete")
}
