package domain

// Browser identifies the target extension-platform lineage
type Browser string

const (
	// BrowserChromium targets Chromium-based browsers (Chrome, Edge, Brave, ...)
	BrowserChromium Browser = "chromium"
	// BrowserFirefox targets Firefox-based browsers
	BrowserFirefox Browser = "firefox"
)

// EntrypointType is the closed set of build-target purposes
type EntrypointType string

const (
	TypeBackground    EntrypointType = "background"
	TypePopup         EntrypointType = "popup"
	TypeOptions       EntrypointType = "options"
	TypeDevtools      EntrypointType = "devtools"
	TypeBookmarks     EntrypointType = "bookmarks"
	TypeHistory       EntrypointType = "history"
	TypeNewtab        EntrypointType = "newtab"
	TypeSandbox       EntrypointType = "sandbox"
	TypeSidepanel     EntrypointType = "sidepanel"
	TypeContentScript EntrypointType = "content-script"
)

// EntrypointTypes lists every valid type in the order the assembler maps
// them. Order only matters for the chrome_url_overrides namespace, which is
// built additively across the bookmarks, history, and newtab mappers.
var EntrypointTypes = []EntrypointType{
	TypeBackground,
	TypeBookmarks,
	TypeHistory,
	TypeNewtab,
	TypePopup,
	TypeDevtools,
	TypeOptions,
	TypeSandbox,
	TypeSidepanel,
	TypeContentScript,
}

// Valid reports whether t is a member of the closed type set
func (t EntrypointType) Valid() bool {
	switch t {
	case TypeBackground, TypePopup, TypeOptions, TypeDevtools, TypeBookmarks,
		TypeHistory, TypeNewtab, TypeSandbox, TypeSidepanel, TypeContentScript:
		return true
	}
	return false
}

// Singleton reports whether only the first discovered entrypoint of this type
// is used. Additional singleton entrypoints are ignored without error.
func (t EntrypointType) Singleton() bool {
	switch t {
	case TypeContentScript, TypeSandbox, TypeSidepanel:
		return false
	}
	return true
}

// Entrypoint is a discovered build target. Options carry type-specific
// declarative configuration understood only by the corresponding field mapper.
type Entrypoint struct {
	Type    EntrypointType `json:"type" yaml:"type" toml:"type"`
	Name    string         `json:"name" yaml:"name" toml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options"`
}

// Chunk is a single emitted bundle artifact
type Chunk struct {
	EntrypointName string   `json:"entrypoint"`
	Path           string   `json:"path"`
	Assets         []string `json:"assets,omitempty"`
}

// BuildOutput is the read-only artifact index a bundler produced for the
// discovered entrypoints. The manifest core only consults it to resolve
// auxiliary assets (CSS for content scripts).
type BuildOutput struct {
	Chunks []Chunk `json:"chunks"`
}

// ChunkFor returns the chunk emitted for the named entrypoint, if any
func (b *BuildOutput) ChunkFor(name string) (Chunk, bool) {
	if b == nil {
		return Chunk{}, false
	}
	for _, c := range b.Chunks {
		if c.EntrypointName == name {
			return c, true
		}
	}
	return Chunk{}, false
}

// PackageMetadata is the slice of package.json the manifest core consumes
type PackageMetadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	ShortName   string `json:"shortName,omitempty"`
}
