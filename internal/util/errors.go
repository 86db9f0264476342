package util

import (
	"errors"
	"fmt"
)

var (
	// notFound
	ErrUserNotFound         = errors.New("user not found")
	ErrCourseNotFound       = errors.New("course not found")
	ErrLectureNotFound      = errors.New("lecture not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// denied
	ErrPermissionDenied    = errors.New("permission denied")
	ErrLectureNotCompleted = errors.New("lecture not completed")

	// conflict
	ErrEmailRegistered      = errors.New("email already registered")
	ErrQuizAlreadySubmitted = errors.New("quiz already submitted")
	ErrAlreadyAttended      = errors.New("already attended this lecture")
	ErrLectureHasQuiz       = errors.New("lecture already has a quiz")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries enough detail to identify the offending
// field or answer pair in a rejected payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
