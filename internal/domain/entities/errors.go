package entities

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrCoachNotFound  = errors.New("coach not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrValidation     = errors.New("validation failed")
	ErrStorage        = errors.New("storage failure")
)

// ValidationError reports a missing or invalid field in a request body.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a validation error with a client-facing message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError reports that a collection could not be read or written as
// valid structured data. It matches ErrStorage with errors.Is and unwraps to
// the underlying cause.
type StorageError struct {
	Collection string
	Op         string
	Err        error
}

// NewStorageError wraps err as a storage failure for the given collection
func NewStorageError(collection, op string, err error) *StorageError {
	return &StorageError{Collection: collection, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Collection, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
