package main

import (
	"context"
	"fmt"
	"net/http"

	"hospital-coordinator/config"
	_ "hospital-coordinator/docs" // Swagger docs
	"hospital-coordinator/internal/httpserver"
	"hospital-coordinator/pkg/gemini"
	"hospital-coordinator/pkg/log"
)

// @title       Hospital Coordinator API
// @description Intelligent hospital operations assistant: a Gemini-backed coordinator that routes free-text requests to specialist personas, plus static dashboard figures.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Hospital Coordinator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Generator model: %s", cfg.Gemini.Model)

	if cfg.Gemini.APIKey == "" {
		// The server still starts; the chat domain reports the missing
		// credential as a typed error on first dispatch.
		logger.Warn(ctx, "GEMINI_API_KEY is not set, chat dispatch will be unavailable")
	}

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		GeminiConfig: gemini.Config{
			APIKey:      cfg.Gemini.APIKey,
			Model:       cfg.Gemini.Model,
			APIURL:      cfg.Gemini.APIURL,
			Temperature: cfg.Gemini.Temperature,
			HTTPClient:  &http.Client{Timeout: cfg.Gemini.Timeout},
		},
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
