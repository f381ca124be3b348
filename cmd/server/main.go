package main

import (
	"context"
	"errors"
	"fmt"
	"go-cms-app/internal/auth"
	"go-cms-app/internal/cache"
	"go-cms-app/internal/config"
	"go-cms-app/internal/data"
	"go-cms-app/internal/handler"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, os.Stdout)

	// --- Database Initialization and Migration ---
	log.Info(fmt.Sprintf("Connecting to the %s database...", cfg.DB.Driver))
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	log.Info("Applying database migrations...")
	migrator := data.NewMigrator(db, cfg.DB)
	if err := migrator.Up(); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	// --- Cache Initialization ---
	// Left as a nil interface when disabled; the services skip caching then.
	var responseCache service.Cacher
	if cfg.Cache.Enabled {
		log.Info("Initializing SQLite cache...")
		c, err := cache.New(cfg.Cache)
		if err != nil {
			log.Fatal(err, "Failed to initialize cache")
		}
		defer c.Close()
		responseCache = c
		log.Info("Cache initialized.")
	}

	// --- Authorization Setup ---
	enforcer, err := auth.NewEnforcer()
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, cfg.App.Env, log)

	// --- Dependency Injection and Handler Initialization ---
	// Shared by every service so that invalidations are ordered against list fills.
	listCache := service.NewResponseCache(responseCache)
	renderer := service.NewRenderer()
	categoryRepository := data.NewCategoryRepository(db)
	pageRepository := data.NewSQLPageRepository(db)
	itemRepository := data.NewItemRepository(db)

	pageService := service.NewPageService(pageRepository, renderer, listCache)
	categoryService := service.NewCategoryService(categoryRepository, pageRepository, listCache)
	itemService := service.NewItemService(itemRepository)
	bootstrapService := service.NewBootstrapService(migrator, func(ctx context.Context) error {
		return data.Seed(ctx, categoryRepository, pageRepository)
	}, listCache)

	handlers := handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, pageService),
		Page:     handler.NewPageHandler(pageService),
		Item:     handler.NewItemHandler(itemService),
		Admin:    handler.NewAdminHandler(bootstrapService),
		Health:   handler.NewHealthHandler(db),
		Seo:      handler.NewSeoHandler(pageService, cfg.Server.PublicURL),
	}

	authzMiddleware := middleware.Authorizer(enforcer, cfg.App.Env)
	errorMiddleware := middleware.Error(log, cfg.App.ExposeStoreErrors)

	// --- Router Setup ---
	router := handler.NewRouter(handlers, log, authzMiddleware, errorMiddleware)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
