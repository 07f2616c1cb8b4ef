package models

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field level messages, keyed by wire field name.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// Add appends a message for field and returns the receiver.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

var (
	ErrEmailRequired      = NewValidationError("email", "Users must have an email address.")
	ErrEmailTaken         = NewValidationError("email", "user with this email already exists.")
	ErrInvalidCredentials = NewValidationError("non_field_errors", "Unable to authenticate with provided credentials.")
	ErrUserNotFound       = ErrorNotFound{Message: "user not found"}
	ErrInfluencerNotFound = ErrorNotFound{Message: "influencer not found"}
	ErrInactiveUser       = ErrorUnauthorized{Message: "user inactive or deleted"}
)
