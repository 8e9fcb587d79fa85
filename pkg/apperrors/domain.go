package apperrors

import (
	"net/http"
)

// Factories for errors that wrap a lower-layer cause.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound or an
// ownership-filtered zero-row write) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict converts a store-level uniqueness violation into a 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrStorage wraps an object-storage failure as a 500.
func ErrStorage(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "storage", "Storage operation failed", http.StatusInternalServerError)
}

// ErrMailRelay wraps an SMTP failure as a 502.
func ErrMailRelay(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "email", "Failed to deliver message", http.StatusBadGateway)
}

// Static errors for frequent, fixed conditions.

// ErrUsernameTaken surfaces the users.username unique constraint.
var ErrUsernameTaken = New(
	CodeConflict,
	"profile",
	"Username is already taken",
	http.StatusConflict,
)

// ErrCollectionLimit is returned when an owned collection reaches its cap.
var ErrCollectionLimit = New(
	CodeLimitExceeded,
	"profile",
	"Collection item limit reached",
	http.StatusBadRequest,
)

// ErrFileTooLarge rejects uploads over the configured per-file maximum.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType rejects uploads whose MIME type is not allowed.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// ErrMissingFile is returned when a multipart endpoint requires a file part.
var ErrMissingFile = New(
	CodeValidationFailed,
	"upload",
	"A file is required for this operation",
	http.StatusBadRequest,
)

// ErrInvalidOAuthState rejects a callback whose state does not match the
// value issued at login time.
var ErrInvalidOAuthState = New(
	CodeUnauthorized,
	"auth",
	"OAuth state mismatch",
	http.StatusUnauthorized,
)

// ErrInvalidToken rejects a malformed or expired bearer token.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
