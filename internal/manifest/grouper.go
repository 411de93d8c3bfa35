package manifest

import (
	"reflect"

	"github.com/extforge/extforge-go/internal/domain"
	"github.com/mitchellh/hashstructure/v2"
)

// ContentScriptGroup is a set of content-script entrypoints sharing
// structurally equal declarative options, collapsed into one
// content_scripts declaration
type ContentScriptGroup struct {
	// Options are the declarative fields of the first group member
	Options map[string]any
	// Scripts are every member's resolved script path, in discovery order
	Scripts []string
}

// GroupContentScripts partitions content-script entrypoints by their
// options. Equality is order-insensitive for object keys and otherwise
// exact; no normalization of equivalent-but-differently-shaped values.
// Group order follows the discovery order of each group's first member.
func GroupContentScripts(entrypoints []domain.Entrypoint) []ContentScriptGroup {
	var groups []ContentScriptGroup
	index := make(map[uint64][]int)

	for _, ep := range entrypoints {
		path := scriptPath(ep.Name)

		key, err := hashstructure.Hash(ep.Options, hashstructure.FormatV2, nil)
		if err == nil {
			joined := false
			for _, i := range index[key] {
				// Hash buckets, DeepEqual decides: map iteration in the
				// hash is orderless, slices stay order-sensitive.
				if reflect.DeepEqual(groups[i].Options, ep.Options) {
					groups[i].Scripts = append(groups[i].Scripts, path)
					joined = true
					break
				}
			}
			if joined {
				continue
			}
			index[key] = append(index[key], len(groups))
		}

		groups = append(groups, ContentScriptGroup{
			Options: ep.Options,
			Scripts: []string{path},
		})
	}

	return groups
}

// Stylesheets resolves the CSS assets the bundler emitted for a group.
// Asset association is not implemented yet; the bundler output is accepted
// so callers already pass it, but no stylesheet is ever reported.
func (g ContentScriptGroup) Stylesheets(out *domain.BuildOutput) []string {
	return nil
}
