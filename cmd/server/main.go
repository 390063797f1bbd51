package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planweaver/internal/catalog"
	"planweaver/internal/config"
	"planweaver/internal/database"
	"planweaver/internal/handlers"
	"planweaver/internal/planclient"
	"planweaver/internal/planner"
	"planweaver/internal/repository"
	"planweaver/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load topic catalogs
	topics := catalog.NewLoader()
	if err := topics.Load(cfg.TopicsCatalogPath, cfg.NichesCatalogPath); err != nil {
		log.Fatalf("Failed to load topic catalogs: %v", err)
	}

	log.Printf("Topic catalog loaded: %d topics, %d niches", len(topics.Topics()), len(topics.Niches()))

	// Initialize repositories
	childRepo := repository.NewChildRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Initialize the remote plan client and the fallback chain
	remote := planclient.NewClient(cfg.PlanServiceURL, cfg.PlanServiceAPIKey, cfg.PlanServiceTimeout, cfg.PlanMaxAttempts)
	fallbackState := planner.NewFallbackState()
	orchestrator := planner.NewOrchestrator(remote, topics, fallbackState)
	basic := planner.LocalSynthesis{Catalog: topics, Rotation: planner.FiveDayRotation}

	// Initialize services
	notifyService, err := service.NewNotifyService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize notification service: %v", err)
	}
	planService := service.NewPlanService(orchestrator, basic, childRepo, planRepo, notifyService)

	// Setup routes
	mux := http.NewServeMux()
	planHandler := handlers.NewPlanHandler(planService)
	planHandler.RegisterRoutes(mux)

	// Wrap with middleware
	handler := handlers.RequestLogger(handlers.SessionToken(mux))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
