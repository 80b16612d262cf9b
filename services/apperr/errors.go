// Package apperr defines the typed error taxonomy shared by the service layer.
// Handlers translate these into HTTP responses; services never log and retry.
package apperr

import "fmt"

// ValidationError signals malformed input: bad time format, start >= end,
// bad date or identifier.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError signals a legitimate business rejection, e.g. a duplicate
// slot window. Callers must not auto-retry.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Message
}

func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// NotFoundError signals an unknown identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// AuthError is surfaced by the auth collaborator, never generated by the
// domain services themselves.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "unauthorized: " + e.Message
}

func NewAuthError(msg string) error {
	return &AuthError{Message: msg}
}
