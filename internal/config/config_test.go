package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Scan.Path)
	assert.Equal(t, "bottomup", cfg.Scan.Strategy)
	assert.Equal(t, 500*time.Millisecond, cfg.Scan.ProgressInterval)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "xlsx", cfg.Output.Format)
	assert.Equal(t, DefaultTimestampLayout, cfg.Output.TimestampLayout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, LogToRunFile, cfg.Logging.Output)

	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dirinv.yaml")

	configContent := `
scan:
  path: /srv/share
  strategy: rewalk
  progress_interval: 2s

output:
  dir: /tmp/reports
  format: table

logging:
  level: debug
  format: json
  output: stderr
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/share", cfg.Scan.Path)
	assert.Equal(t, "rewalk", cfg.Scan.Strategy)
	assert.Equal(t, 2*time.Second, cfg.Scan.ProgressInterval)
	assert.Equal(t, "/tmp/reports", cfg.Output.Dir)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, DefaultTimestampLayout, cfg.Output.TimestampLayout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("scan: [unclosed"), 0o644))

	_, err := Load(configPath)
	require.Error(t, err)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DIRINV_OUTPUT_FORMAT", "json")
	t.Setenv("DIRINV_SCAN_STRATEGY", "rewalk")
	t.Setenv("REPORT_ROOT", "/data/reports")

	configPath := filepath.Join(t.TempDir(), "dirinv.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  dir: ${REPORT_ROOT}/inventory\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "rewalk", cfg.Scan.Strategy)
	assert.Equal(t, "/data/reports/inventory", cfg.Output.Dir)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides(Overrides{
		Path:      "/mnt/share",
		Format:    "json",
		LogLevel:  "warn",
		LogOutput: "stdout",
	})

	assert.Equal(t, "/mnt/share", cfg.Scan.Path)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)

	// Empty values leave the configuration alone.
	assert.Equal(t, "bottomup", cfg.Scan.Strategy)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad strategy", mutate: func(c *Config) { c.Scan.Strategy = "parallel" }, fields: []string{"scan.strategy"}},
		{name: "empty path", mutate: func(c *Config) { c.Scan.Path = "" }, fields: []string{"scan.path"}},
		{name: "negative interval", mutate: func(c *Config) { c.Scan.ProgressInterval = -time.Second }, fields: []string{"scan.progress_interval"}},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "csv" }, fields: []string{"output.format"}},
		{name: "empty output dir", mutate: func(c *Config) { c.Output.Dir = "" }, fields: []string{"output.dir"}},
		{name: "empty layout", mutate: func(c *Config) { c.Output.TimestampLayout = "" }, fields: []string{"output.timestamp_layout"}},
		{
			name: "bad logging",
			mutate: func(c *Config) {
				c.Logging.Level = "trace"
				c.Logging.Format = "xml"
			},
			fields: []string{"logging.level", "logging.format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, len(tt.fields))

			for i, field := range tt.fields {
				assert.Equal(t, field, verrs[i].Field)
			}
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out", "nested")

	now := time.Date(2024, time.January, 31, 15, 45, 0, 0, time.UTC)
	run := NewRun(cfg, now)

	assert.Equal(t, "20240131_154500", run.Stamp)
	assert.Equal(t, now, run.Timestamp)
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "folder_analysis_20240131_154500.txt"), run.LogPath())
	assert.Equal(t, filepath.Join(cfg.Output.Dir, "folder_hierarchy_analysis_20240131_154500.xlsx"), run.ReportPath())

	require.NoError(t, run.Prepare())
	info, err := os.Stat(cfg.Output.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRun_Logging(t *testing.T) {
	run := NewRun(DefaultConfig(), time.Date(2024, time.January, 31, 15, 45, 0, 0, time.UTC))

	resolved := run.Logging(LoggingConfig{Level: "info", Output: LogToRunFile})
	assert.Equal(t, run.LogPath(), resolved.Output)

	untouched := run.Logging(LoggingConfig{Output: "stderr"})
	assert.Equal(t, "stderr", untouched.Output)
}

func TestRun_CustomLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.TimestampLayout = "2006-01-02"

	run := NewRun(cfg, time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-07-04", run.Stamp)
}
