package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError provides a structured error that can be rendered to API consumers.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}

	return e.Message
}

// Unwrap exposes the internal error for errors.Is / errors.As compatibility.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Internal
}

// WithInternal returns a copy of the AppError with an attached internal error.
func (e *AppError) WithInternal(err error) *AppError {
	if e == nil {
		return nil
	}

	cpy := *e
	cpy.Internal = err
	return &cpy
}

// Common errors exposed to the rest of the application. Messages mirror the
// public API contract, so changing them is a breaking change.
var (
	ErrServer = &AppError{
		Code:       "SERVER_ERROR",
		Message:    "Server error",
		StatusCode: http.StatusInternalServerError,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: http.StatusBadRequest,
	}

	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "Invalid username or password",
		StatusCode: http.StatusUnauthorized,
	}

	ErrTooManyAttempts = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Too many login attempts. Please try again in 15 minutes.",
		StatusCode: http.StatusTooManyRequests,
	}

	ErrCaptchaFailed = &AppError{
		Code:       "CAPTCHA_FAILED",
		Message:    "CAPTCHA verification failed",
		StatusCode: http.StatusForbidden,
	}

	ErrOrphanageNotFound  = NewNotFound("Orphanage not found")
	ErrUserNotFound       = NewNotFound("User not found")
	ErrDonationNotFound   = NewNotFound("Donation not found")
	ErrBookmarkNotFound   = NewNotFound("Bookmark not found")
	ErrPrayerNotFound     = NewNotFound("Prayer not found")
	ErrLeaderboardEmpty   = NewNotFound("No leaderboard data found")
	ErrNoDonationsForUser = NewNotFound("No donations found for user")
	ErrNoDonationsForHome = NewNotFound("No donations found for orphanage")
	ErrNoOrphanagesInCity = NewNotFound("No orphanages found in this city")
	ErrNoBookmarksForUser = NewNotFound("No bookmarks found for user")
	ErrNoBookmarksForHome = NewNotFound("No bookmarks found for orphanage")
	ErrNoDonationTimeline = NewNotFound("No donation data found for this orphanage")
)

// New builds a new application error with the provided metadata.
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNotFound builds a 404 error carrying a resource specific message.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// NewBadRequest wraps validation errors with a helpful message.
func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:       ErrBadRequest.Code,
		Message:    message,
		StatusCode: ErrBadRequest.StatusCode,
	}
}

// Wrap turns any error into an AppError while keeping the original error for logging.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:       ErrServer.Code,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Internal:   err,
	}
}

// FromError converts a generic error into an AppError, defaulting to ErrServer.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrServer.WithInternal(err)
}
