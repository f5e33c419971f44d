package main

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/config"
)

// Standalone schema migration runner, for environments where the server
// should not touch the schema on boot.
func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}
	log.Println("✅ Database migration completed")
}
