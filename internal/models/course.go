package models

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CatalogSubjects are the subjects present in the course catalog. The random
// sampler returns a selection from each of these.
var CatalogSubjects = []string{
	"Business Finance",
	"Graphics Design",
	"Web Development",
	"Musical Instruments",
}

// Course represents a single catalog entry.
type Course struct {
	ID              int64     `json:"-" gorm:"primaryKey"`
	CourseID        int64     `json:"course_id" gorm:"uniqueIndex;not null"`
	Title           string    `json:"course_title" gorm:"size:255;not null"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	URL             string    `json:"url" gorm:"size:255"`
	IsPaid          bool      `json:"is_paid" gorm:"not null;default:false"`
	Price           float64   `json:"price"`
	NumSubscribers  int64     `json:"num_subscribers"`
	NumReviews      int64     `json:"num_reviews"`
	NumLectures     int64     `json:"num_lectures"`
	Level           string    `json:"level" gorm:"size:50"`
	ContentDuration float64   `json:"content_duration"`
	Subject         string    `json:"subject" gorm:"size:100;index;not null"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// TableName returns the database table name for the Course model.
func (Course) TableName() string {
	return "courses"
}

// BeforeCreate derives the URL slug from the title when none is set.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
	}
	return nil
}
