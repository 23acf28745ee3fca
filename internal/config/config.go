package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backends understood by CreateRepository.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config holds all configuration options for the task board application
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
	Tasks       TasksConfig       `yaml:"tasks"`
	Commands    CommandsConfig    `yaml:"commands"`
}

// StorageConfig holds the durable key-value store configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"TB_DATA_DIR"`
	Backend        string        `yaml:"backend" env:"TB_STORAGE_BACKEND"`
	Filename       string        `yaml:"filename" env:"TB_DB_FILENAME"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"TB_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"TB_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"TB_DATA_DIR_PERMISSIONS"`
}

// ValidationConfig holds input limits
type ValidationConfig struct {
	TitleMaxLength       int `yaml:"title_max_length" env:"TB_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `yaml:"description_max_length" env:"TB_VALIDATION_DESCRIPTION_MAX"`
	UsernameMaxLength    int `yaml:"username_max_length" env:"TB_VALIDATION_USERNAME_MAX"`
	TagMaxLength         int `yaml:"tag_max_length" env:"TB_VALIDATION_TAG_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" env:"TB_DISPLAY_DATE_FORMAT"`
	IDLength   int    `yaml:"id_length" env:"TB_DISPLAY_ID_LENGTH"`
	Width      int    `yaml:"width" env:"TB_DISPLAY_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TB_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TB_APP_VERBOSE"`
}

// TasksConfig holds task defaults offered by the add and edit commands
type TasksConfig struct {
	Categories    []string `yaml:"categories" env:"TB_CATEGORIES"`
	DefaultFilter string   `yaml:"default_filter" env:"TB_DEFAULT_FILTER"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	OutputDefaultFormat string `yaml:"output_default_format" env:"TB_OUTPUT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Dir:            filepath.Join(homeDir, ".tb"),
			Backend:        BackendSQLite,
			Filename:       "tb.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       255,
			DescriptionMaxLength: 2000,
			UsernameMaxLength:    64,
			TagMaxLength:         32,
		},
		Display: DisplayConfig{
			DateFormat: "Jan 02, 2006",
			IDLength:   8,
			Width:      80,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
		Tasks: TasksConfig{
			Categories:    []string{"Work", "Personal", "Shopping"},
			DefaultFilter: "all",
		},
		Commands: CommandsConfig{
			OutputDefaultFormat: "csv",
		},
	}
}

// GetStoragePath returns the SQLite database file or, for the file backend,
// the directory holding one JSON file per key.
func (c *Config) GetStoragePath() string {
	if c.Storage.Backend == BackendFile {
		return filepath.Join(c.Storage.Dir, "store")
	}
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetConfigFilePath returns the YAML file consulted between defaults and environment.
func (c *Config) GetConfigFilePath() string {
	if path := os.Getenv("TB_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(c.Storage.Dir, "config.yaml")
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value kept.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TB_DATA_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if backend := os.Getenv("TB_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if filename := os.Getenv("TB_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if timeout := os.Getenv("TB_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("TB_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("TB_DATA_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	if n := os.Getenv("TB_VALIDATION_TITLE_MAX"); n != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(n, c.Validation.TitleMaxLength)
	}
	if n := os.Getenv("TB_VALIDATION_DESCRIPTION_MAX"); n != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(n, c.Validation.DescriptionMaxLength)
	}
	if n := os.Getenv("TB_VALIDATION_USERNAME_MAX"); n != "" {
		c.Validation.UsernameMaxLength = ParseIntWithFallback(n, c.Validation.UsernameMaxLength)
	}
	if n := os.Getenv("TB_VALIDATION_TAG_MAX"); n != "" {
		c.Validation.TagMaxLength = ParseIntWithFallback(n, c.Validation.TagMaxLength)
	}

	if format := os.Getenv("TB_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if n := os.Getenv("TB_DISPLAY_ID_LENGTH"); n != "" {
		c.Display.IDLength = ParseIntWithFallback(n, c.Display.IDLength)
	}
	if n := os.Getenv("TB_DISPLAY_WIDTH"); n != "" {
		c.Display.Width = ParseIntWithFallback(n, c.Display.Width)
	}

	if timeout := os.Getenv("TB_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TB_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	if categories := os.Getenv("TB_CATEGORIES"); categories != "" {
		c.Tasks.Categories = SplitList(categories)
	}
	if filter := os.Getenv("TB_DEFAULT_FILTER"); filter != "" {
		c.Tasks.DefaultFilter = strings.ToLower(filter)
	}

	if format := os.Getenv("TB_OUTPUT_DEFAULT_FORMAT"); format != "" {
		c.Commands.OutputDefaultFormat = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Backend != BackendSQLite && c.Storage.Backend != BackendFile {
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of: sqlite, file"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}
	if c.Validation.UsernameMaxLength < 1 {
		return &ConfigError{Field: "validation.username_max_length", Message: "username maximum length must be at least 1"}
	}
	if c.Validation.TagMaxLength < 1 {
		return &ConfigError{Field: "validation.tag_max_length", Message: "tag maximum length must be at least 1"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.IDLength < 4 {
		return &ConfigError{Field: "display.id_length", Message: "id length must be at least 4"}
	}
	if c.Display.Width < 20 {
		return &ConfigError{Field: "display.width", Message: "width must be at least 20"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Tasks.DefaultFilter {
	case "all", "pending", "completed":
	default:
		return &ConfigError{Field: "tasks.default_filter", Message: "default filter must be one of: all, pending, completed"}
	}
	seen := make(map[string]bool, len(c.Tasks.Categories))
	for _, category := range c.Tasks.Categories {
		if strings.TrimSpace(category) == "" {
			return &ConfigError{Field: "tasks.categories", Message: "categories cannot be blank"}
		}
		key := strings.ToLower(strings.TrimSpace(category))
		if seen[key] {
			return &ConfigError{Field: "tasks.categories", Message: "duplicate category " + strconv.Quote(category)}
		}
		seen[key] = true
	}

	switch c.Commands.OutputDefaultFormat {
	case "csv", "json":
	default:
		return &ConfigError{Field: "commands.output_default_format", Message: "output format must be one of: csv, json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
