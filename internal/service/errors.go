package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already taken")
	ErrCourseNotFound     = errors.New("course not found")
	ErrInvalidInteraction = errors.New("invalid interaction")
)
