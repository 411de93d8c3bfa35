package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	v := viper.GetViper()
	return loadFrom(v)
}

// LoadWithViper loads configuration from an isolated viper instance
func LoadWithViper() (*Config, *viper.Viper, error) {
	v := viper.New()
	cfg, err := loadFrom(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func loadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Project-local config file (ignore if not found)
	v.SetConfigName("extforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (EXTFORGE_*)
	v.SetEnvPrefix("EXTFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("target.browser", DefaultBrowser)
	v.SetDefault("target.manifest_version", DefaultManifestVersion)

	v.SetDefault("output.directory", DefaultOutputDir)
	v.SetDefault("output.mode", ModeDevelopment)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
