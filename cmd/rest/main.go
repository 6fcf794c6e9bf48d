package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notetaking-be/internal/bootstrap"
	"notetaking-be/internal/config"
	"notetaking-be/internal/model"
	"notetaking-be/internal/server"
	"notetaking-be/internal/tracer"
	"notetaking-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.Connection, cfg.Database.LogLevel)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// An embedded database has nobody to run cmd/migrate against it.
	if cfg.Database.Driver == database.DriverSQLite {
		if err := database.AutoMigrate(gormDB, model.All()...); err != nil {
			log.Panicf("Unable to migrate SQLite DB: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Background: Starting Consumer and Feed Services...")
	if err := container.Start(ctx); err != nil {
		log.Printf("Background Services Error: %v", err)
	}

	// 6. Initialize and Run Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
