package buildfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/extforge/extforge-go/pkg/version"
)

// Loader loads and validates project build files
type Loader struct {
	toolVersion string
}

// NewLoader creates a build-file loader checking requires constraints
// against the running tool version
func NewLoader() *Loader {
	return &Loader{toolVersion: version.Short()}
}

// Load reads and parses a build file from the given path
func (l *Loader) Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a build file from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*File, error) {
	ext = strings.ToLower(ext)

	var f File
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	l.applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := l.checkRequires(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults names singleton entrypoints after their type when the build
// file omits a name. Multi-cardinality entrypoints bundle to distinct files,
// so their names stay required.
func (l *Loader) applyDefaults(f *File) {
	for i, ep := range f.Entrypoints {
		if ep.Name == "" && ep.Type.Valid() && ep.Type.Singleton() {
			f.Entrypoints[i].Name = string(ep.Type)
		}
	}
}

// checkRequires enforces the build file's tool-version constraint.
// Development builds carry a non-semver version and skip the check.
func (l *Loader) checkRequires(f *File) error {
	if f.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(f.Requires)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidConstraint, f.Requires, err)
	}

	current, err := semver.NewVersion(l.toolVersion)
	if err != nil {
		return nil
	}

	if !constraint.Check(current) {
		return fmt.Errorf("%w: have %s, need %q", ErrRequiresUnsatisfied, l.toolVersion, f.Requires)
	}
	return nil
}
