// Package config provides configuration structures and loading for dirinv.
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Scan    ScanConfig    `yaml:"scan" mapstructure:"scan"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ScanConfig represents traversal settings.
type ScanConfig struct {
	Path             string        `yaml:"path" mapstructure:"path"`
	Strategy         string        `yaml:"strategy" mapstructure:"strategy"` // bottomup or rewalk
	ProgressInterval time.Duration `yaml:"progress_interval" mapstructure:"progress_interval"`
}

// OutputConfig represents report settings.
type OutputConfig struct {
	Dir             string `yaml:"dir" mapstructure:"dir"`
	Format          string `yaml:"format" mapstructure:"format"` // xlsx, json or table
	TimestampLayout string `yaml:"timestamp_layout" mapstructure:"timestamp_layout"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, file, or a file path
}

const (
	// LogToRunFile selects the timestamped log file inside the output directory.
	LogToRunFile = "file"

	// DefaultTimestampLayout produces names like folder_analysis_20240131_154500.txt.
	DefaultTimestampLayout = "20060102_150405"
)

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Path:             ".",
			Strategy:         "bottomup",
			ProgressInterval: 500 * time.Millisecond,
		},
		Output: OutputConfig{
			Dir:             "output",
			Format:          "xlsx",
			TimestampLayout: DefaultTimestampLayout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: LogToRunFile,
		},
	}
}
