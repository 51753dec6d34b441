package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"trk/internal/paths"
)

// Config represents the complete trk configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Export  ExportConfig  `json:"export" mapstructure:"export"`
	Mapping MappingConfig `json:"mapping" mapstructure:"mapping"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ExportConfig contains export defaults
type ExportConfig struct {
	// Format is the default export format: csv or text
	Format string `json:"format" mapstructure:"format"`
	// Gzip compresses CSV exports by default when true
	Gzip bool `json:"gzip" mapstructure:"gzip"`
}

// MappingConfig contains mapping session configuration
type MappingConfig struct {
	// KeywordTable overrides the keyword table file location; empty
	// means <configDir>/keywords.toml, falling back to the built-in
	// table when that file is absent
	KeywordTable string `json:"keywordTable" mapstructure:"keywordTable"`
}

// HistoryConfig contains session history configuration
type HistoryConfig struct {
	// Enabled toggles session logging to the history database
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// MaxEntries caps how many sessions `trk history` shows by default
	MaxEntries int `json:"maxEntries" mapstructure:"maxEntries"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Export: ExportConfig{
			Format: "csv",
			Gzip:   false,
		},
		Mapping: MappingConfig{
			KeywordTable: "",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 20,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from <configDir>/config.json. A missing
// file yields the defaults, not an error.
func Load() (*Config, error) {
	configDir, err := paths.ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("export.format", defaults.Export.Format)
	v.SetDefault("export.gzip", defaults.Export.Gzip)
	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("history.maxEntries", defaults.History.MaxEntries)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaults, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to <configDir>/config.json
func (c *Config) Save() error {
	configDir, err := paths.EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	switch c.Export.Format {
	case "csv", "text":
	default:
		return &ConfigError{Field: "export.format", Message: "must be csv or text"}
	}
	if c.History.MaxEntries < 0 {
		return &ConfigError{Field: "history.maxEntries", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
