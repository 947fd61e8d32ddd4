package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the service layer
var (
	// ErrNotFound reports that a primary key does not resolve
	ErrNotFound = errors.New("not found")
	// ErrMalformedRequest reports a body that cannot be parsed into the expected shape
	ErrMalformedRequest = errors.New("malformed request")
)

// NotFoundError lists the resources that could not be resolved.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Resources []string
}

// NewNotFoundError creates a NotFoundError for the given resource names
func NewNotFoundError(resources ...string) *NotFoundError {
	return &NotFoundError{Resources: resources}
}

func (e *NotFoundError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Messages returns one "<resource> not found" message per resource
func (e *NotFoundError) Messages() []string {
	messages := make([]string, 0, len(e.Resources))
	for _, r := range e.Resources {
		messages = append(messages, fmt.Sprintf("%s not found", r))
	}
	return messages
}

// ValidationError holds every rule an input violated
type ValidationError struct {
	Errors []string
}

// NewValidationError creates a ValidationError with the given messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ErrorResponse is the payload for single-error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the payload for responses reporting several errors
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
