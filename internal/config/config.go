// Package config loads and persists tool configuration from the .tcr
// dot-directory next to the project.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete tool configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Output  OutputConfig  `json:"output" mapstructure:"output"`
	Report  ReportConfig  `json:"report" mapstructure:"report"`
	Limits  LimitsConfig  `json:"limits" mapstructure:"limits"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// OutputConfig controls where results and documents go
type OutputConfig struct {
	Directory       string `json:"directory" mapstructure:"directory"`
	DefaultFormat   string `json:"defaultFormat" mapstructure:"defaultFormat"`
	OpenAfterExport bool   `json:"openAfterExport" mapstructure:"openAfterExport"`
}

// ReportConfig controls PDF rendering
type ReportConfig struct {
	FontPath string `json:"fontPath" mapstructure:"fontPath"`
	FontName string `json:"fontName" mapstructure:"fontName"`
	Author   string `json:"author" mapstructure:"author"`
}

// LimitsConfig carries the configurable sheet acceptance limits
type LimitsConfig struct {
	TireLoadRate        float64 `json:"tireLoadRate" mapstructure:"tireLoadRate"`
	TireContactPressure float64 `json:"tireContactPressure" mapstructure:"tireContactPressure"`
}

// HistoryConfig controls the issuance ledger
type HistoryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Path    string `json:"path" mapstructure:"path"`
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
		Output: OutputConfig{
			Directory:       "reports",
			DefaultFormat:   "json",
			OpenAfterExport: false,
		},
		Report: ReportConfig{
			FontName: "ipaexg",
		},
		Limits: LimitsConfig{
			TireLoadRate:        100,
			TireContactPressure: 200,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(".tcr", "tcr.db"),
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <baseDir>/.tcr/config.json,
// falling back to defaults when no file exists.
func LoadConfig(baseDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(baseDir, ".tcr"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to <baseDir>/.tcr/config.json, creating
// the dot-directory when needed.
func (c *Config) Save(baseDir string) error {
	dir := filepath.Join(baseDir, ".tcr")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if f := c.Output.DefaultFormat; f != "" && f != "json" && f != "human" {
		return &ConfigError{Field: "output.defaultFormat", Message: "must be json or human"}
	}
	if c.Limits.TireLoadRate < 0 || c.Limits.TireContactPressure < 0 {
		return &ConfigError{Field: "limits", Message: "limits must not be negative"}
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
