package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Run carries the per-invocation settings that name output artifacts.
// It is built once at start-up and handed to the logger and report writer.
type Run struct {
	OutputDir string
	Timestamp time.Time
	Stamp     string
}

// NewRun derives the run settings from cfg at the given instant.
func NewRun(cfg *Config, now time.Time) *Run {
	layout := cfg.Output.TimestampLayout
	if layout == "" {
		layout = DefaultTimestampLayout
	}

	return &Run{
		OutputDir: cfg.Output.Dir,
		Timestamp: now,
		Stamp:     now.Format(layout),
	}
}

// Prepare creates the output directory.
func (r *Run) Prepare() error {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %q: %w", r.OutputDir, err)
	}
	return nil
}

// LogPath is the run's diagnostics file.
func (r *Run) LogPath() string {
	return filepath.Join(r.OutputDir, fmt.Sprintf("folder_analysis_%s.txt", r.Stamp))
}

// ReportPath is the run's workbook file.
func (r *Run) ReportPath() string {
	return filepath.Join(r.OutputDir, fmt.Sprintf("folder_hierarchy_analysis_%s.xlsx", r.Stamp))
}

// Logging returns cfg with the "file" output resolved to LogPath.
func (r *Run) Logging(cfg LoggingConfig) LoggingConfig {
	if cfg.Output == LogToRunFile {
		cfg.Output = r.LogPath()
	}
	return cfg
}
