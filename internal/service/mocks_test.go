package service

import (
	"context"
	"errors"

	"github.com/ffauzan/nc-api/internal/models"
	"github.com/ffauzan/nc-api/internal/repository"
)

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	createFunc         func(ctx context.Context, user *models.User) error
	updateFunc         func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock CourseRepository
// =============================================================================

type mockCourseRepository struct {
	listAllFunc         func(ctx context.Context) ([]models.Course, error)
	findByCourseIDFunc  func(ctx context.Context, courseID int64) (*models.Course, error)
	findBySlugFunc      func(ctx context.Context, slug string) (*models.Course, error)
	findByCourseIDsFunc func(ctx context.Context, courseIDs []int64) ([]models.Course, error)
	randomBySubjectFunc func(ctx context.Context, subject string, n int) ([]models.Course, error)
	topBySubjectFunc    func(ctx context.Context, subject string, limit int, excludeCourseID int64) ([]models.Course, error)
	coOccurringFunc     func(ctx context.Context, courseID int64, limit int) ([]repository.CoOccurrence, error)
	createFunc          func(ctx context.Context, course *models.Course) error
}

func (m *mockCourseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) FindByCourseID(ctx context.Context, courseID int64) (*models.Course, error) {
	if m.findByCourseIDFunc != nil {
		return m.findByCourseIDFunc(ctx, courseID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if m.findBySlugFunc != nil {
		return m.findBySlugFunc(ctx, slug)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) FindByCourseIDs(ctx context.Context, courseIDs []int64) ([]models.Course, error) {
	if m.findByCourseIDsFunc != nil {
		return m.findByCourseIDsFunc(ctx, courseIDs)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) RandomBySubject(ctx context.Context, subject string, n int) ([]models.Course, error) {
	if m.randomBySubjectFunc != nil {
		return m.randomBySubjectFunc(ctx, subject, n)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) TopBySubject(ctx context.Context, subject string, limit int, excludeCourseID int64) ([]models.Course, error) {
	if m.topBySubjectFunc != nil {
		return m.topBySubjectFunc(ctx, subject, limit, excludeCourseID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) CoOccurring(ctx context.Context, courseID int64, limit int) ([]repository.CoOccurrence, error) {
	if m.coOccurringFunc != nil {
		return m.coOccurringFunc(ctx, courseID, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, course)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock PreferenceRepository
// =============================================================================

type mockPreferenceRepository struct {
	findByUserIDFunc   func(ctx context.Context, userID int64) ([]models.UserPreference, error)
	replaceForUserFunc func(ctx context.Context, userID int64, prefs []models.UserPreference) error
}

func (m *mockPreferenceRepository) FindByUserID(ctx context.Context, userID int64) ([]models.UserPreference, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPreferenceRepository) ReplaceForUser(ctx context.Context, userID int64, prefs []models.UserPreference) error {
	if m.replaceForUserFunc != nil {
		return m.replaceForUserFunc(ctx, userID, prefs)
	}
	return errors.New("not implemented")
}

// =============================================================================
// Mock InteractionRepository
// =============================================================================

type mockInteractionRepository struct {
	createFunc        func(ctx context.Context, interaction *models.UserInteraction) error
	findByUserIDFunc  func(ctx context.Context, userID int64, limit int) ([]models.UserInteraction, error)
	countByUserIDFunc func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockInteractionRepository) Create(ctx context.Context, interaction *models.UserInteraction) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, interaction)
	}
	return errors.New("not implemented")
}

func (m *mockInteractionRepository) FindByUserID(ctx context.Context, userID int64, limit int) ([]models.UserInteraction, error) {
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID, limit)
	}
	return nil, errors.New("not implemented")
}

func (m *mockInteractionRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	if m.countByUserIDFunc != nil {
		return m.countByUserIDFunc(ctx, userID)
	}
	return 0, errors.New("not implemented")
}
