package database

import (
	"log"

	"github.com/whauf/sportscard-tracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to the sqlite database at dsn and migrates the schema
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(&models.Card{}, &models.Sale{}); err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Initialize(dbPath string) error {
	db, err := Open(dbPath, logger.Info)
	if err != nil {
		return err
	}
	DB = db

	log.Println("Database connected and migrated")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
