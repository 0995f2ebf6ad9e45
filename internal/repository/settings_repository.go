package repository

import (
	"context" // Request scoped cancellation
	"errors"  // Error inspection

	"organizo/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert clauses
)

// SettingsRepository stores the single settings row of each user
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a SettingsRepository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetOrCreate returns the owner's settings, inserting the default row on first read.
// Two concurrent first reads may both miss; the loser's insert hits the unique key and it re-reads instead of failing.
func (r *SettingsRepository) GetOrCreate(ctx context.Context, owner string) (*domain.UserSettings, error) {
	s, err := r.find(ctx, owner)
	if err == nil {
		return s, nil // Existing row
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	row := domain.DefaultSettings(owner)
	err = classify("create settings", r.db.WithContext(ctx).Create(&row).Error)
	if domain.IsConflict(err) {
		audit("create_settings", owner, logrus.Fields{"outcome": "already_created"}, nil)
		return r.find(ctx, owner) // Racing insert won, read its row
	}
	audit("create_settings", owner, logrus.Fields{"outcome": "created"}, err)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, owner)
}

// Upsert writes the supplied fields of patch, creating the row with defaults for the rest if needed
func (r *SettingsRepository) Upsert(ctx context.Context, owner string, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return r.GetOrCreate(ctx, owner) // Nothing to write
	}
	row := domain.DefaultSettings(owner)
	patch.Apply(&row)
	// Only the supplied columns are overwritten on conflict, leaving the others as stored
	err := classify("upsert settings", r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(append(patch.Columns(), "updated_at")),
	}).Create(&row).Error)
	audit("upsert_settings", owner, logrus.Fields{"columns": patch.Columns()}, err)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, owner)
}

func (r *SettingsRepository) find(ctx context.Context, owner string) (*domain.UserSettings, error) {
	var s domain.UserSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).First(&s).Error; err != nil {
		return nil, classify("find settings", err)
	}
	return &s, nil
}
