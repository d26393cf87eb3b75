package service

import (
	"context"

	"github.com/ffauzan/nc-api/internal/models"
	"github.com/ffauzan/nc-api/internal/repository"
)

// Recommender produces course recommendations. It ranks courses that the seed
// course's users also interacted with, and tops the list up with popular
// courses from the same subject when the interaction history is too thin.
type Recommender struct {
	courseRepo repository.CourseRepository
}

// NewRecommender creates a new Recommender instance.
func NewRecommender(courseRepo repository.CourseRepository) *Recommender {
	return &Recommender{courseRepo: courseRepo}
}

// RecommendByCourse returns up to n recommended courses for the seed course.
func (r *Recommender) RecommendByCourse(ctx context.Context, seed *models.Course, n int) ([]models.Course, error) {
	if n <= 0 {
		return nil, nil
	}

	pairs, err := r.courseRepo.CoOccurring(ctx, seed.CourseID, n)
	if err != nil {
		return nil, err
	}

	recommended := make([]models.Course, 0, n)
	seen := map[int64]bool{seed.CourseID: true}

	if len(pairs) > 0 {
		ids := make([]int64, 0, len(pairs))
		for _, p := range pairs {
			ids = append(ids, p.CourseID)
		}

		courses, err := r.courseRepo.FindByCourseIDs(ctx, ids)
		if err != nil {
			return nil, err
		}

		// Re-order the fetched rows by co-occurrence rank.
		byID := make(map[int64]models.Course, len(courses))
		for _, c := range courses {
			byID[c.CourseID] = c
		}
		for _, p := range pairs {
			if c, ok := byID[p.CourseID]; ok && !seen[c.CourseID] {
				recommended = append(recommended, c)
				seen[c.CourseID] = true
			}
		}
	}

	if len(recommended) < n {
		fallback, err := r.courseRepo.TopBySubject(ctx, seed.Subject, n+len(recommended), seed.CourseID)
		if err != nil {
			return nil, err
		}
		for _, c := range fallback {
			if len(recommended) >= n {
				break
			}
			if !seen[c.CourseID] {
				recommended = append(recommended, c)
				seen[c.CourseID] = true
			}
		}
	}

	if len(recommended) > n {
		recommended = recommended[:n]
	}
	return recommended, nil
}
