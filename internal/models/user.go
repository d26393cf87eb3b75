// Package models contains data models for the NextCourse API.
package models

import "time"

// User represents a registered user of the platform.
type User struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	Username            string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email               string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash        string    `json:"-" gorm:"size:128;not null"`
	OnboardingDone      bool      `json:"onboarding_done" gorm:"not null;default:false"`
	UsedInCollaborative bool      `json:"used_in_collaborative" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Preferences  []UserPreference  `json:"-" gorm:"foreignKey:UserID"`
	Interactions []UserInteraction `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
