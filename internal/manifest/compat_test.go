package manifest

import (
	"testing"

	"github.com/extforge/extforge-go/internal/domain"
	"github.com/extforge/extforge-go/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPolicy_Resolve_Matrix(t *testing.T) {
	tests := []struct {
		name    string
		feature Feature
		browser domain.Browser
		mv      int
		emit    bool
		key     string
		legacy  bool
	}{
		{"bookmarks firefox skipped", FeatureBookmarksOverride, domain.BrowserFirefox, 2, false, "", false},
		{"bookmarks firefox mv3 skipped", FeatureBookmarksOverride, domain.BrowserFirefox, 3, false, "", false},
		{"bookmarks chromium v2", FeatureBookmarksOverride, domain.BrowserChromium, 2, true, "chrome_url_overrides.bookmarks", false},
		{"bookmarks chromium v3", FeatureBookmarksOverride, domain.BrowserChromium, 3, true, "chrome_url_overrides.bookmarks", false},
		{"history firefox skipped", FeatureHistoryOverride, domain.BrowserFirefox, 3, false, "", false},
		{"history chromium v2", FeatureHistoryOverride, domain.BrowserChromium, 2, true, "chrome_url_overrides.history", false},
		{"newtab firefox", FeatureNewtabOverride, domain.BrowserFirefox, 2, true, "chrome_url_overrides.newtab", false},
		{"newtab chromium v3", FeatureNewtabOverride, domain.BrowserChromium, 3, true, "chrome_url_overrides.newtab", false},
		{"background firefox", FeatureBackground, domain.BrowserFirefox, 3, true, "background.scripts", false},
		{"background chromium v2", FeatureBackground, domain.BrowserChromium, 2, true, "background.scripts", false},
		{"background chromium v3", FeatureBackground, domain.BrowserChromium, 3, true, "background.service_worker", false},
		{"popup firefox legacy", FeaturePopup, domain.BrowserFirefox, 2, true, "", true},
		{"popup chromium v2 legacy", FeaturePopup, domain.BrowserChromium, 2, true, "", true},
		{"popup chromium v3 action", FeaturePopup, domain.BrowserChromium, 3, true, "action.default_popup", false},
		{"sandbox firefox skipped", FeatureSandbox, domain.BrowserFirefox, 2, false, "", false},
		{"sandbox chromium v2", FeatureSandbox, domain.BrowserChromium, 2, true, "sandbox.pages", false},
		{"sandbox chromium v3", FeatureSandbox, domain.BrowserChromium, 3, true, "sandbox.pages", false},
		{"sidepanel firefox", FeatureSidePanel, domain.BrowserFirefox, 2, true, "sidebar_action.default_panel", false},
		{"sidepanel chromium v2 skipped", FeatureSidePanel, domain.BrowserChromium, 2, false, "", false},
		{"sidepanel chromium v3", FeatureSidePanel, domain.BrowserChromium, 3, true, "side_panel.default_path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			policy := NewPolicy(tt.browser, tt.mv, sink)

			outcome := policy.Resolve(tt.feature)

			assert.Equal(t, tt.emit, outcome.Emit)
			assert.Equal(t, tt.key, outcome.Key)
			assert.Equal(t, tt.legacy, outcome.LegacyPopup)
			if tt.emit {
				assert.Empty(t, sink.Warnings)
			} else {
				assert.Equal(t, []string{string(tt.feature)}, sink.Features())
				assert.NotEmpty(t, outcome.Reason)
			}
		})
	}
}

func TestPolicy_Resolve_SkipReportsReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockWarningSink(ctrl)
	sink.EXPECT().Warn("side panel", "not supported under manifest v2")

	policy := NewPolicy(domain.BrowserChromium, 2, sink)
	outcome := policy.Resolve(FeatureSidePanel)

	assert.False(t, outcome.Emit)
	assert.Equal(t, "not supported under manifest v2", outcome.Reason)
}

func TestPolicy_Resolve_UnknownBrowserFallsBackToChromiumRows(t *testing.T) {
	policy := NewPolicy(domain.Browser("edge"), 3, nil)

	assert.Equal(t, "background.service_worker", policy.Resolve(FeatureBackground).Key)
	assert.Equal(t, "chrome_url_overrides.bookmarks", policy.Resolve(FeatureBookmarksOverride).Key)
	assert.Equal(t, "side_panel.default_path", policy.Resolve(FeatureSidePanel).Key)
}

func TestPolicy_Resolve_NilSinkDiscards(t *testing.T) {
	policy := NewPolicy(domain.BrowserFirefox, 2, nil)

	assert.NotPanics(t, func() {
		outcome := policy.Resolve(FeatureSandbox)
		assert.False(t, outcome.Emit)
	})
}

func TestPolicy_Resolve_UnlistedFeatureEmits(t *testing.T) {
	policy := NewPolicy(domain.BrowserFirefox, 2, nil)

	outcome := policy.Resolve(Feature("devtools page"))
	assert.True(t, outcome.Emit)
	assert.Empty(t, outcome.Key)
}
