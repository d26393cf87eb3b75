package repository

import (
	"context"
	"fmt"

	"github.com/ffauzan/nc-api/internal/models"
	"gorm.io/gorm"
)

// InteractionRepository defines the interface for user interaction operations.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.UserInteraction) error
	FindByUserID(ctx context.Context, userID int64, limit int) ([]models.UserInteraction, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new InteractionRepository instance.
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.UserInteraction) error {
	if err := r.db.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}
	return nil
}

func (r *interactionRepository) FindByUserID(ctx context.Context, userID int64, limit int) ([]models.UserInteraction, error) {
	var interactions []models.UserInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions for user %d: %w", userID, err)
	}
	return interactions, nil
}

func (r *interactionRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserInteraction{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count interactions for user %d: %w", userID, err)
	}
	return count, nil
}
