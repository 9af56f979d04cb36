package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/pantrysync/backend/config"
	httpDelivery "github.com/pantrysync/backend/internal/delivery/http"
	"github.com/pantrysync/backend/internal/infrastructure/memstore"
	"github.com/pantrysync/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting pantrysync backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.Bool("engine_debug", cfg.Engine.DebugLogging))

	// Infrastructure
	store := memstore.New()

	// Engine
	parser := usecase.NewIngredientParser()
	classifier := usecase.NewClassifier()
	matcher := usecase.NewItemMatcher()
	merger := usecase.NewMergeService(store, matcher, logger, usecase.MergeServiceConfig{
		EnableDebugLogging: cfg.Engine.DebugLogging,
	})
	builder := usecase.NewListBuilder(parser, merger)

	// Delivery
	handler := httpDelivery.NewHandler(parser, classifier, merger, builder, store, store)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
