package main

import (
	"log"

	"notetaking-be/internal/config"
	"notetaking-be/internal/model"
	"notetaking-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	if cfg.Database.Driver != database.DriverSQLite && cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection, cfg.Database.LogLevel)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. AutoMigrate All Models
	models := model.All()
	log.Printf("Running AutoMigrate for %d tables...", len(models))

	if err := database.AutoMigrate(db, models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	log.Println("Migration completed successfully")
}
