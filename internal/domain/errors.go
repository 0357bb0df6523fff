package domain

import "errors"

// Standard error kinds surfaced by the pipeline stages.
const (
	ErrNetwork     = "NETWORK_ERROR"
	ErrSchema      = "SCHEMA_MISMATCH"
	ErrPersistence = "PERSISTENCE_ERROR"
	ErrEmptyResult = "EMPTY_RESULT"
)

type AppError struct {
	Kind    string
	Message string
	Origin  error // Original error that caused this error, if any
}

func (appErr *AppError) Error() string {
	if appErr.Origin != nil {
		return appErr.Message + ": " + appErr.Origin.Error()
	}
	return appErr.Message
}

func (appErr *AppError) Unwrap() error {
	return appErr.Origin
}

func NewAppError(kind string, message string, originalErr error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Origin:  originalErr,
	}
}

// IsKind reports whether err (or anything it wraps) is an AppError of the given kind.
func IsKind(err error, kind string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// ErrorKind extracts the kind from err, or "UNKNOWN" for foreign errors.
func ErrorKind(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return "UNKNOWN"
}
