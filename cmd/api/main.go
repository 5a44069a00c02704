package main

import (
	"log"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"chain-registry/internal/adapter/delivery/http"
	handler "chain-registry/internal/adapter/handler/http"
	"chain-registry/internal/adapter/storage/memory"
	"chain-registry/internal/adapter/storage/registry"
	"chain-registry/internal/application"
	"chain-registry/internal/config"
	applog "chain-registry/internal/logger"
)

func main() {
	// --- Configuration ---
	cfgPath := "configs"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// --- Logger ---
	logger, err := applog.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logger.Sync() // Ensure logs are flushed before exiting
	logger.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	logger.Info("Initializing dependencies...")

	chainRepo := registry.NewRepository(cfg.Registry, logger)
	cacheRepo := memory.NewCacheRepository(cfg.Cache, logger)

	chainService := application.NewChainService(chainRepo, cacheRepo, logger, *cfg)

	chainHandler := handler.NewChainHandler(chainService, logger)

	// --- HTTP Router & Server ---
	logger.Info("Setting up HTTP router...")
	r := router.New()
	http.RegisterRoutes(r, chainHandler, logger)

	serverAddr := ":" + cfg.Server.Port
	logger.Info("Starting HTTP server",
		zap.String("address", serverAddr),
		zap.String("defaultChain", cfg.Registry.DefaultChain),
		zap.Bool("ccipSelectors", cfg.Registry.Selectors),
	)

	if err := fasthttp.ListenAndServe(serverAddr, http.LoggingMiddleware(r.Handler, logger)); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
