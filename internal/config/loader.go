package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g. DIRINV_OUTPUT_DIR.
const EnvPrefix = "DIRINV"

// Load reads configuration from the specified file path.
// An empty path yields the defaults, still subject to environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper creates a Config from an existing Viper instance.
// Useful for testing or when Viper is configured externally.
func LoadFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Scan.Path = os.ExpandEnv(cfg.Scan.Path)
	cfg.Output.Dir = os.ExpandEnv(cfg.Output.Dir)
	cfg.Logging.Output = os.ExpandEnv(cfg.Logging.Output)

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("scan.path", cfg.Scan.Path)
	v.SetDefault("scan.strategy", cfg.Scan.Strategy)
	v.SetDefault("scan.progress_interval", cfg.Scan.ProgressInterval)

	v.SetDefault("output.dir", cfg.Output.Dir)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.timestamp_layout", cfg.Output.TimestampLayout)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)
}

// Overrides contains CLI flag values that take precedence over the file and environment.
type Overrides struct {
	Path      string
	Strategy  string
	OutputDir string
	Format    string
	LogLevel  string
	LogFormat string
	LogOutput string
}

// ApplyOverrides applies CLI flag overrides.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Path != "" {
		c.Scan.Path = o.Path
	}
	if o.Strategy != "" {
		c.Scan.Strategy = o.Strategy
	}
	if o.OutputDir != "" {
		c.Output.Dir = o.OutputDir
	}
	if o.Format != "" {
		c.Output.Format = o.Format
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Logging.Format = o.LogFormat
	}
	if o.LogOutput != "" {
		c.Logging.Output = o.LogOutput
	}
}
