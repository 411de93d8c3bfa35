package manifest

import (
	"regexp"

	"github.com/extforge/extforge-go/internal/domain"
)

// Extension platforms only install strict numeric versions: one to four
// dot-separated components, each 0 or a number without a leading zero, at
// most nine digits. Pre-release and build-metadata suffixes are rejected by
// the stores, so they are stripped here and preserved in version_name.
var versionPrefix = regexp.MustCompile(`^(0|[1-9][0-9]{0,8})(\.(0|[1-9][0-9]{0,8})){0,3}`)

// SimplifyVersion extracts the longest strict-numeric prefix of a version
// string: "1.2.3-beta.1" becomes "1.2.3", "2.0" stays "2.0". It returns an
// error wrapping domain.ErrInvalidVersionFormat when no numeric prefix
// exists at all.
func SimplifyVersion(raw string) (string, error) {
	simplified := versionPrefix.FindString(raw)
	if simplified == "" {
		return "", domain.NewVersionError(raw)
	}
	return simplified, nil
}
