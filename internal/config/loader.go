package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	// The data dir decides where the config file lives, so honor it before reading the file.
	if dir := os.Getenv("TB_DATA_DIR"); dir != "" {
		l.config.Storage.Dir = dir
	}

	if err := l.LoadFile(l.config.GetConfigFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadFile merges a YAML config file into the loader's configuration.
// Keys absent from the file keep their current value. A missing file is not an error.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, l.config); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("parse %s: %v", path, err)}
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		config.ApplyOverrides(overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field means the flag was not given.
type ConfigOverrides struct {
	DataDir        *string
	Backend        *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	TitleMaxLength *int

	DateFormat *string
	IDLength   *int
	Width      *int

	Timeout *time.Duration
	Verbose *bool

	Categories    *[]string
	DefaultFilter *string

	OutputDefaultFormat *string
}

// ApplyOverrides copies every non-nil override onto the configuration.
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		c.Storage.Dir = *overrides.DataDir
	}
	if overrides.Backend != nil {
		c.Storage.Backend = strings.ToLower(*overrides.Backend)
	}
	if overrides.DBFilename != nil {
		c.Storage.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		c.Storage.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		c.Storage.WriteTimeout = *overrides.DBWriteTimeout
	}

	if overrides.TitleMaxLength != nil {
		c.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}

	if overrides.DateFormat != nil {
		c.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.IDLength != nil {
		c.Display.IDLength = *overrides.IDLength
	}
	if overrides.Width != nil {
		c.Display.Width = *overrides.Width
	}

	if overrides.Timeout != nil {
		c.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}

	if overrides.Categories != nil {
		c.Tasks.Categories = append([]string(nil), (*overrides.Categories)...)
	}
	if overrides.DefaultFilter != nil {
		c.Tasks.DefaultFilter = strings.ToLower(*overrides.DefaultFilter)
	}

	if overrides.OutputDefaultFormat != nil {
		c.Commands.OutputDefaultFormat = strings.ToLower(*overrides.OutputDefaultFormat)
	}
}

// SplitList splits a comma separated list, trimming entries and dropping blanks.
func SplitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
