package models

import "time"

// Interaction types accepted by the API.
const (
	InteractionView   = "view"
	InteractionEnroll = "enroll"
	InteractionRating = "rating"
)

// UserInteraction records a single user action against a course. Interactions
// are the input of the collaborative recommender.
type UserInteraction struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	CourseID  int64     `json:"course_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"size:20;not null"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the UserInteraction model.
func (UserInteraction) TableName() string {
	return "user_interactions"
}

// ValidInteractionType reports whether t is one of the accepted types.
func ValidInteractionType(t string) bool {
	switch t {
	case InteractionView, InteractionEnroll, InteractionRating:
		return true
	}
	return false
}
