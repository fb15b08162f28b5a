package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Path defaults, relative to the project root
	DefaultSourceLocation  = "src"
	DefaultCompileCommands = "compile_commands.json"
	DefaultOutputSubdir    = "sphinx/source/_c_api"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".csphinx"
	}
	return filepath.Join(home, ".csphinx")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration. ProjectRoot is left empty on
// purpose: it has no sensible default and Validate rejects its absence.
func Default() *Config {
	return &Config{
		SourceLocation:  DefaultSourceLocation,
		CompileCommands: DefaultCompileCommands,
		Output: OutputConfig{
			Directory: DefaultOutputSubdir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
