package safe

import (
	"errors"
)

// Sentinel errors for Safe configuration and search parameters
var (
	// ErrNoOwners is returned when a configuration has no owners
	ErrNoOwners = errors.New("at least one owner is required")

	// ErrInvalidThreshold is returned when the threshold is outside [1, owners]
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrDuplicateOwner is returned when an owner is listed more than once
	ErrDuplicateOwner = errors.New("duplicate owner")

	// ErrInvalidOwner is returned for owners the Safe contract rejects
	ErrInvalidOwner = errors.New("invalid owner")

	// ErrIncompleteL2Setup is returned when only one of the SafeToL2Setup
	// contract and the L2 singleton is configured
	ErrIncompleteL2Setup = errors.New("incomplete SafeToL2Setup configuration")

	// ErrInvalidPrefix is returned when a vanity prefix cannot be parsed
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrInvalidCalldata is returned when calldata cannot be decoded as a
	// Safe proxy creation
	ErrInvalidCalldata = errors.New("invalid calldata")
)

// FieldError reports a configuration field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
