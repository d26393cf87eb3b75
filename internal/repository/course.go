package repository

import (
	"context"
	"fmt"

	"github.com/ffauzan/nc-api/internal/models"
	"gorm.io/gorm"
)

// CoOccurrence is one row of the collaborative co-occurrence query: a course
// that users of the seed course also interacted with, and how often.
type CoOccurrence struct {
	CourseID int64
	Count    int64
}

// CourseRepository defines the interface for course data operations.
type CourseRepository interface {
	ListAll(ctx context.Context) ([]models.Course, error)
	FindByCourseID(ctx context.Context, courseID int64) (*models.Course, error)
	FindBySlug(ctx context.Context, slug string) (*models.Course, error)
	FindByCourseIDs(ctx context.Context, courseIDs []int64) ([]models.Course, error)
	RandomBySubject(ctx context.Context, subject string, n int) ([]models.Course, error)
	TopBySubject(ctx context.Context, subject string, limit int, excludeCourseID int64) ([]models.Course, error)
	CoOccurring(ctx context.Context, courseID int64, limit int) ([]CoOccurrence, error)
	Create(ctx context.Context, course *models.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new CourseRepository instance.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) ListAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.WithContext(ctx).Order("course_id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) FindByCourseID(ctx context.Context, courseID int64) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&course).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find course %d: %w", courseID, err)
	}
	return &course, nil
}

func (r *courseRepository) FindBySlug(ctx context.Context, slug string) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&course).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find course by slug %s: %w", slug, err)
	}
	return &course, nil
}

func (r *courseRepository) FindByCourseIDs(ctx context.Context, courseIDs []int64) ([]models.Course, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	var courses []models.Course
	err := r.db.WithContext(ctx).Where("course_id IN ?", courseIDs).Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find courses by ids: %w", err)
	}
	return courses, nil
}

// RandomBySubject returns up to n random courses for a subject. RANDOM() is
// understood by both postgres and sqlite.
func (r *courseRepository) RandomBySubject(ctx context.Context, subject string, n int) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Order("RANDOM()").
		Limit(n).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample courses for subject %s: %w", subject, err)
	}
	return courses, nil
}

func (r *courseRepository) TopBySubject(ctx context.Context, subject string, limit int, excludeCourseID int64) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("subject = ? AND course_id <> ?", subject, excludeCourseID).
		Order("num_subscribers DESC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top courses for subject %s: %w", subject, err)
	}
	return courses, nil
}

// CoOccurring finds courses that users of the given course also interacted
// with, ordered by how many such users there are.
func (r *courseRepository) CoOccurring(ctx context.Context, courseID int64, limit int) ([]CoOccurrence, error) {
	var results []CoOccurrence
	err := r.db.WithContext(ctx).
		Table("user_interactions").
		Select("user_interactions.course_id as course_id, COUNT(DISTINCT user_interactions.user_id) as count").
		Joins("JOIN user_interactions seed ON seed.user_id = user_interactions.user_id").
		Where("seed.course_id = ? AND user_interactions.course_id <> ?", courseID, courseID).
		Group("user_interactions.course_id").
		Order("count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get co-occurring courses for %d: %w", courseID, err)
	}
	return results, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}
