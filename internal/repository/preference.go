package repository

import (
	"context"
	"fmt"

	"github.com/ffauzan/nc-api/internal/models"
	"gorm.io/gorm"
)

// PreferenceRepository defines the interface for user preference operations.
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID int64) ([]models.UserPreference, error)
	ReplaceForUser(ctx context.Context, userID int64, prefs []models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new PreferenceRepository instance.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) FindByUserID(ctx context.Context, userID int64) ([]models.UserPreference, error) {
	var prefs []models.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("subject").Find(&prefs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find preferences for user %d: %w", userID, err)
	}
	return prefs, nil
}

// ReplaceForUser swaps the full preference set for a user in one transaction.
func (r *preferenceRepository) ReplaceForUser(ctx context.Context, userID int64, prefs []models.UserPreference) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserPreference{}).Error; err != nil {
			return err
		}
		for i := range prefs {
			prefs[i].UserID = userID
		}
		if len(prefs) == 0 {
			return nil
		}
		return tx.Create(&prefs).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace preferences for user %d: %w", userID, err)
	}
	return nil
}
