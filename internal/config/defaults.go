package config

// Build modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Default values
const (
	DefaultBrowser         = "chromium"
	DefaultManifestVersion = 3
	DefaultOutputDir       = "./dist"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Target: TargetConfig{
			Browser:         DefaultBrowser,
			ManifestVersion: DefaultManifestVersion,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
			Mode:      ModeDevelopment,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
