package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AarazooSingh1506/autism-detction-system/internal/config"
	logging "github.com/AarazooSingh1506/autism-detction-system/internal/logging"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the sqlite database and runs migrations. Unlike connecting
// lazily on first use, everything that can fail does so here, once, so
// startup either completes or the process exits cleanly.
func Init(log *zap.Logger) error {
	path := config.Conf.Database.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	gormLogger := logging.NewGormZapLogger(log)

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent appends.
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info("Database connection established", zap.String("path", path))
	return Migrate(log)
}

// Migrate creates or updates the schema. Safe to call repeatedly.
func Migrate(log *zap.Logger) error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Assessment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Info("Database migrations completed successfully")
	return nil
}
