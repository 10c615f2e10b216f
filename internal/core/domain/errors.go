package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers every credential failure: malformed Basic
	// header, wrong password, unknown or expired session token. Callers
	// deliberately cannot tell which.
	ErrUnauthorized = errors.New("unauthorized")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	// ErrFileNotFound is returned both for genuinely absent nodes and for
	// nodes owned by another user, so existence is never leaked.
	ErrFileNotFound = errors.New("file not found")

	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	// ErrInvalidData marks a payload that is not valid base64.
	ErrInvalidData = errors.New("invalid file data")
)

// MissingFieldError reports a required request field that was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s", e.Field)
}

// MissingField builds a MissingFieldError for the given field name.
func MissingField(field string) error {
	return &MissingFieldError{Field: field}
}
