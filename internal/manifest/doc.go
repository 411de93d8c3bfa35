// Package manifest derives a browser-extension manifest document from the
// entrypoints a build discovered, the artifacts the bundler produced for
// them, and the target platform (browser family, manifest schema version,
// user-supplied overrides).
//
// # Pipeline
//
// Generation is a pure transformation followed by one write:
//
//	buckets := manifest.Classify(entrypoints)        // per-type, order-preserving
//	doc, err := assembler.Assemble(pkg, entrypoints, buildOutput)
//	err = writer.Write(ctx, doc)                     // <outDir>/manifest.json
//
// The assembler validates package metadata, builds the base fields, merges
// user overrides, then runs one field mapper per entrypoint type. Each
// mapper consults the compatibility policy, which decides per (feature,
// browser, manifest version) whether a field is emitted, emitted under an
// alternate key, or skipped with a warning through the injected sink.
//
// # Cardinality
//
// background, popup, options, devtools, bookmarks, history, and newtab are
// singleton types: only the first discovered entrypoint is used and any
// extras are ignored without error. content-script, sandbox, and sidepanel
// entrypoints all participate. Content scripts sharing structurally equal
// declarative options collapse into a single content_scripts entry.
//
// # Error Handling
//
// Missing package metadata (domain.MissingFieldError) and an
// unparseable version (domain.ErrInvalidVersionFormat) abort generation;
// no partial manifest is written. Unsupported features never abort: the
// field is omitted and a warning names the feature and the reason.
package manifest
