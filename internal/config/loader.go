package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	v := viper.GetViper()
	return load(v)
}

// LoadWithViper loads configuration from an explicit viper instance. Useful
// for tests that must not touch the global instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (CSPHINX_*)
	v.SetEnvPrefix("CSPHINX")
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("source_location", DefaultSourceLocation)
	v.SetDefault("compile_commands", DefaultCompileCommands)
	v.SetDefault("output.directory", "")
	v.SetDefault("output.dry_run", false)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
}
