// Package apperr defines the typed failures surfaced by the recipe core.
package apperr

import (
	"fmt"
)

// ValidationError reports bad input shape or value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConflictError reports that a uniqueness constraint is already satisfied.
type ConflictError struct {
	Resource string
	Message  string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError reports that a referenced row is absent.
type NotFoundError struct {
	Resource string
	ID       int64
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// EmptyCartError is returned when a shopping list export is requested for an empty cart.
type EmptyCartError struct {
	UserID int64
}

// Error implements the error interface.
func (e *EmptyCartError) Error() string {
	return "shopping cart is empty"
}

// AuthorizationError is returned when the caller may not mutate the resource.
type AuthorizationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "you do not have permission to perform this action"
	}
	return e.Message
}

// NewValidation builds a ValidationError.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewConflict builds a ConflictError.
func NewConflict(resource, message string) *ConflictError {
	return &ConflictError{Resource: resource, Message: message}
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
