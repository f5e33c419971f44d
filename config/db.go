package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/models"
)

var DB *gorm.DB

// SetupDatabase connects to DB and runs migrations
func SetupDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}
	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	log.Println("✅ Database connected and migrated")
	return db
}

// Migrate creates or updates the schema for all journal models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Casino{},
		&models.BettingSession{},
		&models.Bet{},
	)
}
