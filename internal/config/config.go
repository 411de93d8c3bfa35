package config

import (
	"fmt"

	"github.com/extforge/extforge-go/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Target   TargetConfig   `mapstructure:"target" yaml:"target"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Manifest map[string]any `mapstructure:"manifest" yaml:"manifest"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// TargetConfig selects the browser family and manifest schema version
type TargetConfig struct {
	Browser         string `mapstructure:"browser" yaml:"browser"`
	ManifestVersion int    `mapstructure:"manifest_version" yaml:"manifest_version"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Mode      string `mapstructure:"mode" yaml:"mode"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Browser returns the configured browser family
func (c *Config) Browser() domain.Browser {
	return domain.Browser(c.Target.Browser)
}

// Production reports whether output should be production-serialized
func (c *Config) Production() bool {
	return c.Output.Mode == ModeProduction
}

// Validate validates the configuration, repairing blank values where a
// default exists and rejecting values outside the supported sets
func (c *Config) Validate() error {
	if c.Target.Browser == "" {
		c.Target.Browser = DefaultBrowser
	}
	switch domain.Browser(c.Target.Browser) {
	case domain.BrowserChromium, domain.BrowserFirefox:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownBrowser, c.Target.Browser)
	}

	if c.Target.ManifestVersion == 0 {
		c.Target.ManifestVersion = DefaultManifestVersion
	}
	if c.Target.ManifestVersion != 2 && c.Target.ManifestVersion != 3 {
		return fmt.Errorf("%w: %d", domain.ErrUnknownManifestVersion, c.Target.ManifestVersion)
	}

	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Output.Mode == "" {
		c.Output.Mode = ModeDevelopment
	}
	if c.Output.Mode != ModeDevelopment && c.Output.Mode != ModeProduction {
		return fmt.Errorf("invalid output.mode %q (use %q or %q)", c.Output.Mode, ModeDevelopment, ModeProduction)
	}

	return nil
}
