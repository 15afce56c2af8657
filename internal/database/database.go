package database

import (
	"fmt"

	"mocar/config"
	"mocar/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the single-file store in WAL mode so readers are not blocked
// while a write is in flight.
func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all tables. Vehicles and places
// each migrate twice, once per collection sharing the model.
func AutoMigrate(db *gorm.DB) error {
	for _, table := range []string{"cars", "bikes"} {
		if err := db.Table(table).AutoMigrate(&models.Vehicle{}); err != nil {
			return err
		}
	}
	for _, table := range []string{"cities", "locations"} {
		if err := db.Table(table).AutoMigrate(&models.Place{}); err != nil {
			return err
		}
	}
	return db.AutoMigrate(
		&models.GalleryImage{},
		&models.HeroImage{},
		&models.AboutImage{},
		&models.Message{},
		&models.Admin{},
		&models.PasswordReset{},
	)
}
