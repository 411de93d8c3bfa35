package buildfile

import "errors"

// Sentinel errors for the buildfile package
var (
	// ErrFileNotFound indicates the build file does not exist
	ErrFileNotFound = errors.New("build file not found")

	// ErrInvalidFormat indicates the build file is not valid YAML, JSON, or TOML
	ErrInvalidFormat = errors.New("build file must be valid YAML, JSON, or TOML")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, .json, or .toml)")

	// ErrNoEntrypoints indicates the build file declares no entrypoints
	ErrNoEntrypoints = errors.New("build file must declare at least one entrypoint")

	// ErrUnknownType indicates an entrypoint type outside the supported set
	ErrUnknownType = errors.New("unknown entrypoint type")

	// ErrMissingName indicates a multi-cardinality entrypoint without a name
	ErrMissingName = errors.New("entrypoint name is required")

	// ErrInvalidConstraint indicates an unparseable requires constraint
	ErrInvalidConstraint = errors.New("invalid requires constraint")

	// ErrRequiresUnsatisfied indicates the running tool version does not
	// satisfy the build file's requires constraint
	ErrRequiresUnsatisfied = errors.New("extforge version requirement not satisfied")
)
