package service

import (
	"context"
	"errors"

	"github.com/ffauzan/nc-api/internal/models"
	"github.com/ffauzan/nc-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferenceInput is one subject/level choice submitted during onboarding.
type PreferenceInput struct {
	Subject string `json:"subject" binding:"required"`
	Level   string `json:"level"`
}

// InteractionInput is a single recorded user action against a course.
type InteractionInput struct {
	Type   string   `json:"type" binding:"required"`
	Rating *float64 `json:"rating"`
}

// ProfileService defines preference and interaction operations for the
// authenticated user.
type ProfileService interface {
	GetPreferences(ctx context.Context, userID int64) ([]models.UserPreference, error)
	UpdatePreferences(ctx context.Context, userID int64, prefs []PreferenceInput) ([]models.UserPreference, error)
	RecordInteraction(ctx context.Context, userID, courseID int64, input InteractionInput) (*models.UserInteraction, error)
}

type profileService struct {
	userRepo        repository.UserRepository
	prefRepo        repository.PreferenceRepository
	interactionRepo repository.InteractionRepository
	courseRepo      repository.CourseRepository
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	userRepo repository.UserRepository,
	prefRepo repository.PreferenceRepository,
	interactionRepo repository.InteractionRepository,
	courseRepo repository.CourseRepository,
) ProfileService {
	return &profileService{
		userRepo:        userRepo,
		prefRepo:        prefRepo,
		interactionRepo: interactionRepo,
		courseRepo:      courseRepo,
	}
}

func (s *profileService) GetPreferences(ctx context.Context, userID int64) ([]models.UserPreference, error) {
	return s.prefRepo.FindByUserID(ctx, userID)
}

// UpdatePreferences replaces the user's preference set and marks onboarding
// as done.
func (s *profileService) UpdatePreferences(ctx context.Context, userID int64, inputs []PreferenceInput) ([]models.UserPreference, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	prefs := make([]models.UserPreference, 0, len(inputs))
	for _, in := range inputs {
		prefs = append(prefs, models.UserPreference{
			Subject: in.Subject,
			Level:   in.Level,
		})
	}

	if err := s.prefRepo.ReplaceForUser(ctx, userID, prefs); err != nil {
		return nil, err
	}

	if !user.OnboardingDone {
		user.OnboardingDone = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.prefRepo.FindByUserID(ctx, userID)
}

// RecordInteraction stores an interaction and flips the user's
// used_in_collaborative flag on first contact, since the recommender reads
// interaction history live.
func (s *profileService) RecordInteraction(ctx context.Context, userID, courseID int64, input InteractionInput) (*models.UserInteraction, error) {
	if !models.ValidInteractionType(input.Type) {
		return nil, ErrInvalidInteraction
	}
	if input.Type == models.InteractionRating {
		if input.Rating == nil || *input.Rating < 0 || *input.Rating > 5 {
			return nil, ErrInvalidInteraction
		}
	}

	if _, err := s.courseRepo.FindByCourseID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	interaction := &models.UserInteraction{
		ID:       uuid.NewString(),
		UserID:   userID,
		CourseID: courseID,
		Type:     input.Type,
		Rating:   input.Rating,
	}
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	if !user.UsedInCollaborative {
		user.UsedInCollaborative = true
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return interaction, nil
}
