package buildfile

import (
	"fmt"

	"github.com/extforge/extforge-go/internal/domain"
)

// File represents the project build file declaring the extension's
// entrypoints
type File struct {
	// Requires is an optional semver constraint on the extforge version
	// the project needs, e.g. ">= 0.2.0"
	Requires    string              `yaml:"requires,omitempty" json:"requires,omitempty" toml:"requires"`
	Entrypoints []domain.Entrypoint `yaml:"entrypoints" json:"entrypoints" toml:"entrypoints"`
}

// Validate validates the declared entrypoints
func (f *File) Validate() error {
	if len(f.Entrypoints) == 0 {
		return ErrNoEntrypoints
	}
	for i, ep := range f.Entrypoints {
		if !ep.Type.Valid() {
			return fmt.Errorf("entrypoint %d: %w: %q", i, ErrUnknownType, ep.Type)
		}
		if ep.Name == "" {
			return fmt.Errorf("entrypoint %d (%s): %w", i, ep.Type, ErrMissingName)
		}
	}
	return nil
}
