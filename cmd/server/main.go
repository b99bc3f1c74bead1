package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whauf/sportscard-tracker/internal/api"
	"github.com/whauf/sportscard-tracker/internal/config"
	"github.com/whauf/sportscard-tracker/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize services
	backend := services.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout, cfg.BackendRPS, cfg.BackendBurst)
	salesCache := services.NewSalesHistoryCache(cfg.SalesCacheSize, cfg.SalesCacheTTL)
	notifier := services.NewNotifier(cfg.NotificationTTL)
	shell := services.NewShell(backend, salesCache, notifier, cfg.SearchDebounce)
	defer shell.Close()

	// An unreachable backend is not fatal: the view starts empty with an
	// error banner and recovers on the next refresh.
	initCtx, initCancel := context.WithTimeout(context.Background(), cfg.BackendTimeout)
	if err := shell.Refresh(initCtx); err == nil {
		log.Printf("Loaded %d cards from %s", len(shell.State().Cards), backend.BaseURL())
	}
	initCancel()

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start snapshot refresher in background with panic recovery
	refresher := services.NewSnapshotRefresher(shell, cfg.SnapshotRefreshInterval)
	if cfg.SnapshotRefreshInterval > 0 {
		go func() {
			for {
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in snapshot refresher: %v - restarting in 30 seconds", r)
						}
					}()
					refresher.Start(ctx)
				}()

				select {
				case <-ctx.Done():
					return // Graceful shutdown
				case <-time.After(30 * time.Second):
					log.Println("Snapshot refresher restarting after panic recovery...")
				}
			}
		}()
	}

	// Setup router
	router := api.SetupRouter(shell, api.RouterConfig{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		FrontendDistPath: cfg.FrontendDistPath,
	})

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting view server on port %s (backend %s)", cfg.Port, backend.BaseURL())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the refresher
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
