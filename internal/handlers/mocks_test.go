package handlers

import (
	"context"
	"errors"

	"github.com/ffauzan/nc-api/internal/models"
	"github.com/ffauzan/nc-api/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	registerFunc    func(ctx context.Context, username, email, password string) (*models.User, error)
	loginFunc       func(ctx context.Context, username, password string) (*service.LoginResponse, error)
	currentUserFunc func(ctx context.Context, userID int64) (*models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, username, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	if m.currentUserFunc != nil {
		return m.currentUserFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock CourseService
// =============================================================================

type mockCourseService struct {
	listCoursesFunc     func(ctx context.Context) ([]models.Course, error)
	getCourseFunc       func(ctx context.Context, courseID int64) (*models.Course, error)
	getCourseBySlugFunc func(ctx context.Context, slug string) (*models.Course, error)
	featuredFunc        func(ctx context.Context, perSubject int) ([]models.Course, error)
	recommendationsFunc func(ctx context.Context, courseID int64, n int) ([]models.Course, error)
}

func (m *mockCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	if m.listCoursesFunc != nil {
		return m.listCoursesFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseService) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	if m.getCourseFunc != nil {
		return m.getCourseFunc(ctx, courseID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseService) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if m.getCourseBySlugFunc != nil {
		return m.getCourseBySlugFunc(ctx, slug)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseService) FeaturedCourses(ctx context.Context, perSubject int) ([]models.Course, error) {
	if m.featuredFunc != nil {
		return m.featuredFunc(ctx, perSubject)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseService) Recommendations(ctx context.Context, courseID int64, n int) ([]models.Course, error) {
	if m.recommendationsFunc != nil {
		return m.recommendationsFunc(ctx, courseID, n)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCourseService) WarmFeaturedCache(ctx context.Context) error {
	return nil
}

// =============================================================================
// Mock ProfileService
// =============================================================================

type mockProfileService struct {
	getPreferencesFunc    func(ctx context.Context, userID int64) ([]models.UserPreference, error)
	updatePreferencesFunc func(ctx context.Context, userID int64, prefs []service.PreferenceInput) ([]models.UserPreference, error)
	recordInteractionFunc func(ctx context.Context, userID, courseID int64, input service.InteractionInput) (*models.UserInteraction, error)
}

func (m *mockProfileService) GetPreferences(ctx context.Context, userID int64) ([]models.UserPreference, error) {
	if m.getPreferencesFunc != nil {
		return m.getPreferencesFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockProfileService) UpdatePreferences(ctx context.Context, userID int64, prefs []service.PreferenceInput) ([]models.UserPreference, error) {
	if m.updatePreferencesFunc != nil {
		return m.updatePreferencesFunc(ctx, userID, prefs)
	}
	return nil, errors.New("not implemented")
}

func (m *mockProfileService) RecordInteraction(ctx context.Context, userID, courseID int64, input service.InteractionInput) (*models.UserInteraction, error) {
	if m.recordInteractionFunc != nil {
		return m.recordInteractionFunc(ctx, userID, courseID, input)
	}
	return nil, errors.New("not implemented")
}
