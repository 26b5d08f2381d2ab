package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAdmin           = errors.New("not authorized for the admin console")
	ErrSessionExpired     = errors.New("invalid or expired session")
	ErrInvalidTransition  = errors.New("report is not pending approval")
)

// ValidationError reports a missing or malformed field with enough context for
// the console to highlight it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
