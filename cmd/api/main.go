package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"inventory-service/config"
	_ "inventory-service/docs" // Swagger docs
	inventoryHTTP "inventory-service/internal/inventory/delivery/http"
	"inventory-service/internal/inventory/repository/memory"
	"inventory-service/internal/inventory/usecase"
	"inventory-service/internal/httpserver"
	"inventory-service/internal/middleware"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
	"inventory-service/web"
)

// @title       Inventory Service API
// @description In-memory inventory registry with photos stored in a cache directory.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
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

	logger.Info(ctx, "Starting Inventory Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Photo store (creates the cache directory)
	photos, err := photostore.New(ctx, cfg.Storage.CacheDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize photo store: ", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Cache directory: %s", photos.Dir())

	// 4. Inventory domain
	repo := memory.New(logger)
	uc := usecase.New(repo, photos, logger)
	inventoryHandler := inventoryHTTP.New(logger, uc, cfg.Storage.MaxUploadSize)

	// 5. HTTP Server
	forms, err := web.FormsFS()
	if err != nil {
		logger.Error(ctx, "Failed to load forms: ", err)
		os.Exit(1)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.New(logger, middleware.RateLimitConfig{
			Enabled:    cfg.RateLimit.Enabled,
			PerMin:     cfg.RateLimit.PerMin,
			Burst:      cfg.RateLimit.Burst,
			MaxClients: cfg.RateLimit.MaxClients,
			TTL:        cfg.RateLimit.TTL,
		}),
		Forms:            forms,
		InventoryHandler: inventoryHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	logger.Infof(ctx, "http://%s", httpServer.Addr())
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
