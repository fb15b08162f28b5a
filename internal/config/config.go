package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/cdoctools/csphinx-go/internal/domain"
)

// Config represents the application configuration
type Config struct {
	ProjectRoot     string        `mapstructure:"project_root" yaml:"project_root"`
	SourceLocation  string        `mapstructure:"source_location" yaml:"source_location"`
	CompileCommands string        `mapstructure:"compile_commands" yaml:"compile_commands"`
	Output          OutputConfig  `mapstructure:"output" yaml:"output"`
	Exclude         []string      `mapstructure:"exclude" yaml:"exclude"`
	Logging         LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Quiet           bool          `mapstructure:"quiet" yaml:"quiet"`
	Verbose         bool          `mapstructure:"verbose" yaml:"verbose"`

	excludeFilters []*regexp.Regexp
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	DryRun    bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate normalizes the configuration and resolves every path against the
// project root. Relative source, manifest, and output locations are treated
// as relative to the project root, matching the tool's defaulting rules.
func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		return domain.ErrProjectRootRequired
	}

	root, err := filepath.Abs(filepath.Clean(c.ProjectRoot))
	if err != nil {
		return domain.NewValidationError("project_root", err.Error())
	}
	c.ProjectRoot = root

	if c.SourceLocation == "" {
		c.SourceLocation = DefaultSourceLocation
	}
	c.SourceLocation = c.resolveAgainstRoot(c.SourceLocation)

	if c.CompileCommands == "" {
		c.CompileCommands = DefaultCompileCommands
	}
	c.CompileCommands = c.resolveAgainstRoot(c.CompileCommands)

	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputSubdir
	}
	c.Output.Directory = c.resolveAgainstRoot(c.Output.Directory)

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	c.excludeFilters = c.excludeFilters[:0]
	for _, pattern := range c.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return domain.NewValidationError("exclude", fmt.Sprintf("invalid pattern %q: %v", pattern, err))
		}
		c.excludeFilters = append(c.excludeFilters, re)
	}

	return nil
}

// ExcludeFilters returns the compiled exclusion patterns. Validate must have
// succeeded first.
func (c *Config) ExcludeFilters() []*regexp.Regexp {
	return c.excludeFilters
}

func (c *Config) resolveAgainstRoot(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.ProjectRoot, path)
}
