package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidVersionFormat indicates the package version has no valid
	// numeric prefix to install as the manifest version
	ErrInvalidVersionFormat = errors.New("invalid version format")

	// ErrUnknownBrowser indicates an unrecognized target browser family
	ErrUnknownBrowser = errors.New("unknown target browser")

	// ErrUnknownManifestVersion indicates a manifest schema version other than 2 or 3
	ErrUnknownManifestVersion = errors.New("unsupported manifest version")
)

// MissingFieldError indicates required package metadata is absent.
// Fatal: manifest generation aborts without writing anything.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("package.json is missing required field %q", e.Field)
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// VersionError decorates ErrInvalidVersionFormat with the offending input
type VersionError struct {
	Input string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("cannot derive a numeric manifest version from %q (must start with X[.Y[.Z[.W]]] where each part is 0-999999999)", e.Input)
}

func (e *VersionError) Unwrap() error {
	return ErrInvalidVersionFormat
}

// NewVersionError creates a new VersionError
func NewVersionError(input string) *VersionError {
	return &VersionError{Input: input}
}
