package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hybrid-nlu-gateway/config"
	_ "hybrid-nlu-gateway/docs" // Swagger docs
	chatDelivery "hybrid-nlu-gateway/internal/chat/delivery/rest"
	chatUsecase "hybrid-nlu-gateway/internal/chat/usecase"
	"hybrid-nlu-gateway/internal/httpserver"
	"hybrid-nlu-gateway/internal/middleware"
	"hybrid-nlu-gateway/internal/nlu"
	"hybrid-nlu-gateway/pkg/gemini"
	"hybrid-nlu-gateway/pkg/log"
	"hybrid-nlu-gateway/pkg/rasa"
)

// @title       Hybrid NLU Gateway API
// @description Conversational front end that routes utterances to a deterministic (Rasa) or generative (Gemini) NLU strategy and forwards the resolved intent to the dialogue engine.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration (fails fast on missing credentials)
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hybrid NLU Gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Rasa webhook: %s", cfg.Rasa.WebhookURL)
	logger.Infof(ctx, "Gemini model: %s", cfg.Gemini.Model)

	// 3. External clients
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	rasaClient := rasa.NewClient(cfg.Rasa.WebhookURL, cfg.Rasa.Timeout)

	// 4. NLU resolution layer
	resolver := nlu.New(geminiClient, logger, nlu.Config{
		RetryAttempts:   cfg.NLU.RetryAttempts,
		RetryDelay:      cfg.NLU.RetryDelay,
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		CacheSize:       cfg.NLU.CacheSize,
		CacheTTL:        cfg.NLU.CacheTTL,
	})
	safety := nlu.NewEmergencyRule(cfg.NLU.EmergencyPhrases)

	// 5. Chat domain
	chatUC := chatUsecase.New(logger, rasaClient, resolver, safety)
	chatHandler := chatDelivery.New(logger, chatUC)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
