// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GlobalConfig represents the top-level static configuration.
// Maps to the `cigiscope:` root key in YAML.
type GlobalConfig struct {
	Capture  CaptureConfig  `mapstructure:"capture"`
	Protocol ProtocolConfig `mapstructure:"protocol"`
	Output   OutputConfig   `mapstructure:"output"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─── Capture Source ───

// CaptureConfig selects the capture backend and its options.
// Options is decoded by the backend itself (see internal/capture).
type CaptureConfig struct {
	Type    string         `mapstructure:"type"` // file | afpacket
	Options map[string]any `mapstructure:"options"`
}

// ─── Protocol ───

// ProtocolConfig contains CIGI dissection settings.
type ProtocolConfig struct {
	// Version pins the CIGI major version: "auto", "2", "3" or "4".
	Version string `mapstructure:"version"`
	// ByteOrder pins the byte order for v3/v4 streams: "auto", "big"
	// or "little". CIGI 2 is big-endian regardless.
	ByteOrder string `mapstructure:"byte_order"`
	// HostAddress and IGAddress substitute friendly endpoint names
	// into message summaries when an address matches.
	HostAddress string `mapstructure:"host_address"`
	IGAddress   string `mapstructure:"ig_address"`
	// Port restricts dissection to this UDP port. 0 = any port.
	Port int `mapstructure:"port"`
}

// ─── Output ───

// OutputConfig selects how dissected messages are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"` // tree | ndjson
	Path   string `mapstructure:"path"`   // empty = stdout
}

// ─── Metrics ───

// MetricsConfig contains Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
	Path    string `mapstructure:"path"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level"`  // debug / info / warn / error
	Format  string           `mapstructure:"format"` // json / text
	Outputs LogOutputsConfig `mapstructure:"outputs"`
}

// LogOutputsConfig contains structured log output destinations.
type LogOutputsConfig struct {
	File FileOutputConfig `mapstructure:"file"`
	Loki LokiOutputConfig `mapstructure:"loki"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// LokiOutputConfig configures Loki log output.
type LokiOutputConfig struct {
	Enabled      bool              `mapstructure:"enabled"`
	Endpoint     string            `mapstructure:"endpoint"`
	Labels       map[string]string `mapstructure:"labels"`
	BatchSize    int               `mapstructure:"batch_size"`
	BatchTimeout string            `mapstructure:"batch_timeout"`
}

// ─── Loading ───

// configRoot is the top-level wrapper matching the YAML structure `cigiscope: ...`.
type configRoot struct {
	Cigiscope GlobalConfig `mapstructure:"cigiscope"`
}

// Load loads configuration from file.
// The YAML file uses `cigiscope:` as root key; env vars use the
// CIGISCOPE_ prefix (e.g., CIGISCOPE_LOG_LEVEL).
func Load(path string) (*GlobalConfig, error) {
	v := viper.New()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Environment variable overrides. The `cigiscope.` key prefix maps
	// to CIGISCOPE_ in env vars via the key replacer
	// (e.g., key "cigiscope.log.level" → env "CIGISCOPE_LOG_LEVEL").
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Cigiscope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *GlobalConfig {
	v := viper.New()
	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		panic(fmt.Sprintf("config defaults do not unmarshal: %v", err))
	}
	return &root.Cigiscope
}

// setDefaults sets default values for configuration.
// All keys use the "cigiscope." prefix to match the YAML root wrapper.
func setDefaults(v *viper.Viper) {
	// Capture defaults
	v.SetDefault("cigiscope.capture.type", "file")

	// Protocol defaults
	v.SetDefault("cigiscope.protocol.version", "auto")
	v.SetDefault("cigiscope.protocol.byte_order", "auto")
	v.SetDefault("cigiscope.protocol.port", 0)

	// Output defaults
	v.SetDefault("cigiscope.output.format", "tree")

	// Log defaults
	v.SetDefault("cigiscope.log.level", "info")
	v.SetDefault("cigiscope.log.format", "text")
	v.SetDefault("cigiscope.log.outputs.file.enabled", false)
	v.SetDefault("cigiscope.log.outputs.file.path", "/var/log/cigiscope/cigiscope.log")
	v.SetDefault("cigiscope.log.outputs.file.rotation.max_size_mb", 100)
	v.SetDefault("cigiscope.log.outputs.file.rotation.max_age_days", 30)
	v.SetDefault("cigiscope.log.outputs.file.rotation.max_backups", 5)
	v.SetDefault("cigiscope.log.outputs.file.rotation.compress", true)

	// Metrics defaults
	v.SetDefault("cigiscope.metrics.enabled", false)
	v.SetDefault("cigiscope.metrics.listen", ":9091")
	v.SetDefault("cigiscope.metrics.path", "/metrics")
}

// Validate checks cross-field constraints.
func (cfg *GlobalConfig) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug/info/warn/error)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json/text)", cfg.Log.Format)
	}

	switch cfg.Protocol.Version {
	case "", "auto", "2", "3", "4":
	default:
		return fmt.Errorf("invalid protocol.version: %s (must be auto/2/3/4)", cfg.Protocol.Version)
	}
	switch cfg.Protocol.ByteOrder {
	case "", "auto", "big", "little":
	default:
		return fmt.Errorf("invalid protocol.byte_order: %s (must be auto/big/little)", cfg.Protocol.ByteOrder)
	}
	if cfg.Protocol.Port < 0 || cfg.Protocol.Port > 65535 {
		return fmt.Errorf("invalid protocol.port: %d", cfg.Protocol.Port)
	}

	switch cfg.Output.Format {
	case "", "tree", "ndjson":
	default:
		return fmt.Errorf("invalid output.format: %s (must be tree/ndjson)", cfg.Output.Format)
	}

	if cfg.Capture.Type == "" {
		return fmt.Errorf("capture.type is required")
	}

	return nil
}
