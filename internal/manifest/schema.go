package manifest

import "strings"

// FileName is the manifest file name under the output directory
const FileName = "manifest.json"

// DefaultLegacyPopupKey is the manifest key popup entrypoints are emitted
// under when the target does not support the v3 action key
const DefaultLegacyPopupKey = "browser_action"

// OptionMV2Key names the popup entrypoint option selecting the legacy key
// (browser_action or page_action). It is consumed by the popup mapper and
// never emitted into the manifest.
const OptionMV2Key = "mv2Key"

// Document is the assembled manifest. Keys follow the platform schema for
// the configured manifest version plus the vendor extension keys named in
// the compatibility table (chrome_url_overrides, browser_action,
// sidebar_action, side_panel).
type Document map[string]any

// Fragment is a partial manifest produced by a single field mapper
type Fragment map[string]any

// merge folds a fragment into the document. Top-level keys are assigned;
// when both sides hold an object the keys are merged additively so the
// chrome_url_overrides namespace accumulates across the bookmarks, history,
// and newtab mappers.
func (d Document) merge(frag Fragment) {
	for key, val := range frag {
		sub, ok := val.(map[string]any)
		if !ok {
			d[key] = val
			continue
		}
		existing, ok := d[key].(map[string]any)
		if !ok {
			d[key] = sub
			continue
		}
		for k, v := range sub {
			existing[k] = v
		}
	}
}

// cloneValue deep-copies map and slice values. Override objects merged into
// the document must never alias the caller's configuration: the additive
// merge would otherwise write mapper output back into it.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

// splitKey splits a dotted compatibility-table key ("side_panel.default_path")
// into its top-level manifest key and field name
func splitKey(key string) (top, field string) {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}

// spread copies entrypoint options into a fresh object so computed keys can
// be assigned on top. User-declared keys never win over computed ones.
func spread(options map[string]any) map[string]any {
	out := make(map[string]any, len(options)+1)
	for k, v := range options {
		out[k] = v
	}
	return out
}

// scriptPath resolves an entrypoint to its bundled script path, relative to
// the output directory the manifest sits in
func scriptPath(name string) string {
	return name + ".js"
}

// pagePath resolves an entrypoint to its bundled HTML page path
func pagePath(name string) string {
	return name + ".html"
}
