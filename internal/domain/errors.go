// Package domain holds the error taxonomy shared by all layers.
//
// Every failure a request can hit maps to exactly one of these, so the
// presentation layer can translate them to status codes in one place.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidID is returned when a lookup id is not in the store's
	// identifier syntax. Distinct from ErrNotFound, which means the id is
	// well-formed but nothing matches it.
	ErrInvalidID = errors.New("invalid record identifier")

	// ErrNotFound is returned when a well-formed id matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrBlobNotFound is returned when no blob exists under a storage name.
	ErrBlobNotFound = errors.New("blob not found")
)

// ValidationError reports a missing, mistyped or out-of-range field in an
// incoming record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) ValidationError {
	return ValidationError{Field: field, Reason: reason}
}

// UnsupportedMediaTypeError reports an upload whose file extension is not in
// the allow-list.
type UnsupportedMediaTypeError struct {
	Ext string
}

func (e UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %q", e.Ext)
}

// StorageError wraps an I/O failure while writing or reading a blob. By the
// time it surfaces, any partial state has already been rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("blob storage %s failed: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}
