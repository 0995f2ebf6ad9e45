package db

import (
	"fmt" // Error wrapping

	"organizo/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table owned by the application
var Models = []any{&domain.Task{}, &domain.Transaction{}, &domain.UserSettings{}}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.WithField("tables", len(Models)).Info("Migration completed.") // Log successful migration
	return nil
}
