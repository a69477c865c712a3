package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
)

// Config holds settings shared by the solar-cycle binaries.
type Config struct {
	// ServerAddress is the gRPC address of the cycle server.
	ServerAddress string `yaml:"server_addr"`
	// Timeout bounds each RPC.
	Timeout time.Duration `yaml:"timeout"`
	// InitialHour is the hour a new cycle starts at.
	InitialHour int `yaml:"initial_hour"`
	// Ticks is how many hours a simulation drives.
	Ticks int `yaml:"ticks"`
	// TickInterval paces simulation ticks; zero runs them back to back.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Format selects the simulation report format.
	Format string `yaml:"format"`
	// Output is the report destination; empty means stdout.
	Output string `yaml:"output,omitempty"`
	// LogLevel is the minimum level logged.
	LogLevel string `yaml:"log_level"`
}

const (
	// DefaultConfigFilename is the settings file looked up when none is given.
	DefaultConfigFilename = "solar-cycle-settings.yaml"

	// DefaultServerAddress is where the server listens and clients connect by default.
	DefaultServerAddress = "127.0.0.1:50061"

	// DefaultTimeout is the default per-RPC timeout.
	DefaultTimeout = 5 * time.Second

	// DefaultTicks drives exactly one day.
	DefaultTicks = cycle.HoursPerDay

	// DefaultFormat is the report format used when none is configured.
	DefaultFormat = "text"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is used for every file the binaries write.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeTicks is returned for a negative tick count.
	errNegativeTicks = errors.New("ticks must not be negative")
	// errNegativeInterval is returned for a negative tick interval.
	errNegativeInterval = errors.New("tick interval must not be negative")
)

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)

	//nolint:errcheck // Defaults always validate.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from path and validates it.
// A missing file at the default location yields Default(); a missing file
// that was asked for explicitly is an error.
func Load(path string) (*Config, error) {
	explicit := path != "" && path != DefaultConfigFilename
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates cfg and writes it to path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks settings and fills in defaults for empty fields.
// An initial hour outside [0, 23] fails with cycle.ErrInvalidState.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		settings.ServerAddress = DefaultServerAddress
	}

	if _, _, err := net.SplitHostPort(settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server address: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if err := cycle.Validate(settings.InitialHour); err != nil {
		return fmt.Errorf("invalid initial hour: %w", err)
	}

	switch {
	case settings.Ticks < 0:
		return errNegativeTicks
	case settings.Ticks == 0:
		settings.Ticks = DefaultTicks
	}

	if settings.TickInterval < 0 {
		return errNegativeInterval
	}

	if settings.Format == "" {
		settings.Format = DefaultFormat
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	return nil
}
