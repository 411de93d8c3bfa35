package domain

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// WarningSink receives non-fatal compatibility warnings. Generation never
// aborts on an unsupported feature; the feature is omitted and the sink is
// told which feature was skipped and why.
type WarningSink interface {
	Warn(feature, reason string)
}

// WarnFunc adapts an ordinary function to the WarningSink interface
type WarnFunc func(feature, reason string)

// Warn implements WarningSink
func (f WarnFunc) Warn(feature, reason string) {
	f(feature, reason)
}
