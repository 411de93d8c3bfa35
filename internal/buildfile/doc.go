// Package buildfile provides types and utilities for loading and validating
// extforge build files. A build file declares the extension's entrypoints
// and, optionally, the tool version the project requires.
//
// # Build File Format
//
// Build files can be written in YAML, JSON, or TOML:
//
//	requires: ">= 0.2.0"
//	entrypoints:
//	  - type: background
//	  - type: popup
//	    options:
//	      default_title: My Extension
//	  - type: content-script
//	    name: inject
//	    options:
//	      matches: ["https://*/*"]
//
// Singleton entrypoints (background, popup, options, devtools, bookmarks,
// history, newtab) default their name to the type; content-script, sandbox,
// and sidepanel entrypoints bundle to distinct files and must be named.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoEntrypoints: build file declares no entrypoints
//   - ErrUnknownType: entrypoint type outside the supported set
//   - ErrMissingName: unnamed multi-cardinality entrypoint
//   - ErrInvalidFormat: file is not valid YAML/JSON/TOML
//   - ErrFileNotFound: build file does not exist
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrRequiresUnsatisfied: tool version outside the requires constraint
package buildfile
