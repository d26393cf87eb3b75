package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ffauzan/nc-api/internal/cache"
	"github.com/ffauzan/nc-api/internal/logger"
	"github.com/ffauzan/nc-api/internal/models"
	"github.com/ffauzan/nc-api/internal/repository"
	"gorm.io/gorm"
)

// Cache keys and TTLs for catalog data.
const (
	catalogCacheKey      = "cache:courses:all"
	featuredCacheKey     = "cache:courses:featured"
	recommendCacheFormat = "cache:courses:%d:recommended:%d"

	catalogCacheTTL   = 10 * time.Minute
	recommendCacheTTL = 30 * time.Minute

	// DefaultFeaturedPerSubject is the sample size per subject for the
	// featured/random endpoint.
	DefaultFeaturedPerSubject = 2

	// DefaultRecommendations and MaxRecommendations bound the n query
	// parameter of the recommendation endpoint.
	DefaultRecommendations = 5
	MaxRecommendations     = 20
)

// CourseService defines catalog and recommendation operations.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (*models.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error)
	FeaturedCourses(ctx context.Context, perSubject int) ([]models.Course, error)
	Recommendations(ctx context.Context, courseID int64, n int) ([]models.Course, error)
	WarmFeaturedCache(ctx context.Context) error
}

type courseService struct {
	courseRepo  repository.CourseRepository
	recommender *Recommender
	cache       *cache.Cache
	log         logger.Logger
}

// NewCourseService creates a new CourseService instance.
func NewCourseService(courseRepo repository.CourseRepository, recommender *Recommender, c *cache.Cache, log logger.Logger) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		recommender: recommender,
		cache:       c,
		log:         log,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	var cached []models.Course
	if err := s.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("course cache read failed: ", err)
	}

	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, catalogCacheKey, courses, catalogCacheTTL); err != nil {
		s.log.Warn("course cache write failed: ", err)
	}
	return courses, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (*models.Course, error) {
	course, err := s.courseRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *courseService) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	course, err := s.courseRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

// FeaturedCourses returns perSubject random courses for every catalog
// subject. The default sample is served from the warmed cache when present.
func (s *courseService) FeaturedCourses(ctx context.Context, perSubject int) ([]models.Course, error) {
	if perSubject <= 0 {
		perSubject = DefaultFeaturedPerSubject
	}

	if perSubject == DefaultFeaturedPerSubject {
		var cached []models.Course
		if err := s.cache.GetJSON(ctx, featuredCacheKey, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("featured cache read failed: ", err)
		}
	}

	return s.sampleFeatured(ctx, perSubject)
}

// Recommendations returns up to n recommendations for a course, cached per
// (course, n) pair.
func (s *courseService) Recommendations(ctx context.Context, courseID int64, n int) ([]models.Course, error) {
	if n <= 0 {
		n = DefaultRecommendations
	}
	if n > MaxRecommendations {
		n = MaxRecommendations
	}

	seed, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(recommendCacheFormat, courseID, n)
	var cached []models.Course
	if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("recommendation cache read failed: ", err)
	}

	recommended, err := s.recommender.RecommendByCourse(ctx, seed, n)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, recommended, recommendCacheTTL); err != nil {
		s.log.Warn("recommendation cache write failed: ", err)
	}
	return recommended, nil
}

// WarmFeaturedCache recomputes the default featured sample and stores it
// without expiry; the background warmer owns the refresh cadence.
func (s *courseService) WarmFeaturedCache(ctx context.Context) error {
	if !s.cache.Enabled() {
		return nil
	}

	courses, err := s.sampleFeatured(ctx, DefaultFeaturedPerSubject)
	if err != nil {
		return err
	}
	return s.cache.SetJSON(ctx, featuredCacheKey, courses, 0)
}

func (s *courseService) sampleFeatured(ctx context.Context, perSubject int) ([]models.Course, error) {
	courses := make([]models.Course, 0, perSubject*len(models.CatalogSubjects))
	for _, subject := range models.CatalogSubjects {
		sampled, err := s.courseRepo.RandomBySubject(ctx, subject, perSubject)
		if err != nil {
			return nil, err
		}
		courses = append(courses, sampled...)
	}
	return courses, nil
}
