package manifest

import "github.com/extforge/extforge-go/internal/domain"

// Feature identifies a manifest capability whose emission depends on the
// target browser family and manifest schema version
type Feature string

const (
	FeatureBackground        Feature = "background"
	FeaturePopup             Feature = "popup"
	FeatureBookmarksOverride Feature = "bookmarks override page"
	FeatureHistoryOverride   Feature = "history override page"
	FeatureNewtabOverride    Feature = "newtab override page"
	FeatureSandbox           Feature = "sandboxed pages"
	FeatureSidePanel         Feature = "side panel"
)

// Outcome is the compatibility decision for a feature on the current target
type Outcome struct {
	// Emit reports whether the feature is written to the manifest
	Emit bool
	// Key is the dotted manifest path the feature is emitted under
	Key string
	// LegacyPopup marks the popup outcome whose top-level key comes from
	// the entrypoint's mv2Key option instead of the table
	LegacyPopup bool
	// Reason names why the feature is skipped when Emit is false
	Reason string
}

// ruleKey selects a compatibility rule. The zero Browser matches any family
// and version 0 matches any manifest version, so a family-wide rule is one
// row instead of one per version.
type ruleKey struct {
	Browser domain.Browser
	Version int
}

var compatTable = map[Feature]map[ruleKey]Outcome{
	FeatureBackground: {
		{domain.BrowserFirefox, 0}: {Emit: true, Key: "background.scripts"},
		{"", 2}:                    {Emit: true, Key: "background.scripts"},
		{"", 3}:                    {Emit: true, Key: "background.service_worker"},
	},
	FeaturePopup: {
		{domain.BrowserFirefox, 0}: {Emit: true, LegacyPopup: true},
		{"", 2}:                    {Emit: true, LegacyPopup: true},
		{"", 3}:                    {Emit: true, Key: "action.default_popup"},
	},
	FeatureBookmarksOverride: {
		{domain.BrowserFirefox, 0}: {Reason: "not supported by firefox"},
		{"", 0}:                    {Emit: true, Key: "chrome_url_overrides.bookmarks"},
	},
	FeatureHistoryOverride: {
		{domain.BrowserFirefox, 0}: {Reason: "not supported by firefox"},
		{"", 0}:                    {Emit: true, Key: "chrome_url_overrides.history"},
	},
	FeatureNewtabOverride: {
		{"", 0}: {Emit: true, Key: "chrome_url_overrides.newtab"},
	},
	FeatureSandbox: {
		{domain.BrowserFirefox, 0}: {Reason: "not supported by firefox"},
		{"", 0}:                    {Emit: true, Key: "sandbox.pages"},
	},
	FeatureSidePanel: {
		{domain.BrowserFirefox, 0}: {Emit: true, Key: "sidebar_action.default_panel"},
		{"", 2}:                    {Reason: "not supported under manifest v2"},
		{"", 3}:                    {Emit: true, Key: "side_panel.default_path"},
	},
}

// Policy resolves compatibility decisions for one (browser, manifest
// version) target. Skipped features are reported to the warning sink; the
// caller only resolves features an entrypoint actually exists for.
type Policy struct {
	browser domain.Browser
	version int
	sink    domain.WarningSink
}

// NewPolicy creates a policy for the given target. A nil sink discards
// warnings.
func NewPolicy(browser domain.Browser, manifestVersion int, sink domain.WarningSink) *Policy {
	if sink == nil {
		sink = domain.WarnFunc(func(string, string) {})
	}
	return &Policy{browser: browser, version: manifestVersion, sink: sink}
}

// Resolve looks up the outcome for a feature, from most to least specific
// rule. Unknown browser families resolve through the any-family rows, which
// carry the Chromium-lineage behavior.
func (p *Policy) Resolve(feature Feature) Outcome {
	rules := compatTable[feature]
	for _, key := range []ruleKey{
		{p.browser, p.version},
		{p.browser, 0},
		{"", p.version},
		{"", 0},
	} {
		outcome, ok := rules[key]
		if !ok {
			continue
		}
		if !outcome.Emit {
			p.sink.Warn(string(feature), outcome.Reason)
		}
		return outcome
	}
	// Features without a table entry have no target-specific shape
	return Outcome{Emit: true}
}
