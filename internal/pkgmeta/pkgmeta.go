// Package pkgmeta reads the project's package.json and surfaces the fields
// the manifest assembler consumes. Presence of the required fields is the
// assembler's concern; this package only owns read and parse failures.
package pkgmeta

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/extforge/extforge-go/internal/domain"
)

// FileName is the package metadata file name
const FileName = "package.json"

// Sentinel errors for the pkgmeta package
var (
	// ErrFileNotFound indicates package.json does not exist
	ErrFileNotFound = errors.New("package.json not found")

	// ErrInvalidJSON indicates package.json is not valid JSON
	ErrInvalidJSON = errors.New("package.json is not valid JSON")
)

// Load reads package metadata from the given project directory
func Load(dir string) (domain.PackageMetadata, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads package metadata from an explicit path
func LoadFile(path string) (domain.PackageMetadata, error) {
	var meta domain.PackageMetadata

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return meta, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return meta, nil
}
