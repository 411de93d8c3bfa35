package manifest

import (
	"bytes"

	"github.com/extforge/extforge-go/internal/domain"
	"github.com/extforge/extforge-go/internal/utils"
)

// recordedWarning captures one compatibility skip
type recordedWarning struct {
	Feature string
	Reason  string
}

// recordingSink collects warnings for assertions
type recordingSink struct {
	Warnings []recordedWarning
}

func (s *recordingSink) Warn(feature, reason string) {
	s.Warnings = append(s.Warnings, recordedWarning{Feature: feature, Reason: reason})
}

func (s *recordingSink) Features() []string {
	out := make([]string, 0, len(s.Warnings))
	for _, w := range s.Warnings {
		out = append(out, w.Feature)
	}
	return out
}

// quietLogger keeps test output clean
func quietLogger() *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json", Output: &bytes.Buffer{}})
}

func testPackage() domain.PackageMetadata {
	return domain.PackageMetadata{
		Name:        "Tab Wrangler",
		Version:     "1.4.0",
		Description: "Wrangles your tabs",
	}
}

func newTestAssembler(browser domain.Browser, mv int, sink domain.WarningSink) *Assembler {
	return NewAssembler(AssemblerOptions{
		Browser:         browser,
		ManifestVersion: mv,
		Warnings:        sink,
		Logger:          quietLogger(),
	})
}
