package main

import (
	"context"
	"os"

	"storefront/config"
	"storefront/internal/clients"
	"storefront/internal/delivery"
	"storefront/internal/usecase"
	"storefront/pkg/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Storefront Gateway...")

	store := clients.NewStoreHTTPClient(cfg.BackendAPIURL, cfg.HTTPTimeout, logger)
	logger.Infof("Store client initialized for target: %s", cfg.BackendAPIURL)

	notifier := notify.NewLogNotifier(logger)

	// --- Dependency Injection ---
	catalog := usecase.NewCatalog(store, logger)
	sessions := usecase.NewSessionManager(store, notifier, logger)
	logger.Info("Use cases initialized.")

	// The catalog is fetched once at startup and lives for the process
	// lifetime; a failed load leaves the view empty rather than aborting.
	if err := catalog.Load(context.Background()); err != nil {
		logger.Warnf("Initial catalog load failed, starting with an empty catalog: %v", err)
	}

	catalogHandler := delivery.NewCatalogHandler(catalog, store, logger)
	shopperHandler := delivery.NewShopperHandler(sessions, logger)
	orderHandler := delivery.NewOrderHandler(store, store, sessions, cfg.PaymentKeyID, logger)
	adminHandler := delivery.NewAdminHandler(store, store, store, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.RedirectTrailingSlash = false

	catalogHandler.RegisterRoutes(router)
	shopperHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
