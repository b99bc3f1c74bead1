// Command devbackend serves the card REST API from a local sqlite file for
// development and contract testing of the view server and cardctl.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whauf/sportscard-tracker/internal/config"
	"github.com/whauf/sportscard-tracker/internal/database"
	"github.com/whauf/sportscard-tracker/internal/devbackend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.Initialize(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.SeedSampleData {
		if _, err := database.SeedSampleData(database.GetDB()); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	router := devbackend.SetupRouter(database.GetDB())

	srv := &http.Server{
		Addr:    ":" + cfg.DevBackendPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting reference backend on port %s (db %s)", cfg.DevBackendPort, cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down reference backend...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
