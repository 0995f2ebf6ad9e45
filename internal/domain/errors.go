package domain

import (
	"errors" // Sentinel errors
	"fmt"    // Message formatting
)

var (
	// ErrUnauthenticated is returned when a request carries no caller identity
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound is returned when an owner-scoped query or mutation matched zero rows
	ErrNotFound = errors.New("record not found")
)

// ValidationError describes bad or missing caller input. It is raised before any storage call.
type ValidationError struct {
	Message string // Human readable reason, safe to return to the client
}

// Error implements error
func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError
func Invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StorageKind classifies a datastore failure
type StorageKind int

const (
	StorageOther        StorageKind = iota // Anything not classified below
	StorageConflict                        // Unique constraint violation
	StorageMalformed                       // Value rejected by the column type
	StorageMissingTable                    // Schema not migrated
	StorageConstraint                      // Foreign key, not null or check violation
)

// String names the kind for logs
func (k StorageKind) String() string {
	switch k {
	case StorageConflict:
		return "conflict"
	case StorageMalformed:
		return "malformed"
	case StorageMissingTable:
		return "missing_table"
	case StorageConstraint:
		return "constraint"
	default:
		return "other"
	}
}

// StorageError wraps a classified datastore failure
type StorageError struct {
	Kind    StorageKind // Classification
	Code    string      // Driver specific code (SQLSTATE, MySQL error number, SQLite extended code)
	Message string      // Driver message
	Details string      // Driver detail text, if any
	Err     error       // Underlying driver error
}

// Error implements error
func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage %s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("storage %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the driver error
func (e *StorageError) Unwrap() error { return e.Err }

// IsConflict reports whether err is a unique constraint violation
func IsConflict(err error) bool {
	var serr *StorageError
	return errors.As(err, &serr) && serr.Kind == StorageConflict
}
