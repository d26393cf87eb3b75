package models

import "time"

// UserPreference stores one subject/level choice made during onboarding.
type UserPreference struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_user_subject;not null"`
	Subject   string    `json:"subject" gorm:"uniqueIndex:idx_user_subject;size:100;not null"`
	Level     string    `json:"level" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for the UserPreference model.
func (UserPreference) TableName() string {
	return "user_preferences"
}
