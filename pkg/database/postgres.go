package database

import (
	"log"

	"github.com/Romaissazr/travel-agency/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tour{},
		&models.TourDate{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// One review per (user, tour); the service layer upserts, the index
	// backs it up against races
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_review_author_tour
		ON reviews (user_id, tour_id)
	`)

	return db
}
