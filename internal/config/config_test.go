package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/solar-cycle/internal/domain/cycle"
)

// TestValidate checks defaults and rejected values for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings get defaults.
	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultServerAddress, settings.ServerAddress)
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultTicks, settings.Ticks)
	require.Equal(t, DefaultFormat, settings.Format)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)

	// Bad address.
	require.Error(t, Validate(&Config{ServerAddress: "no-port"}))

	// Out-of-range initial hour.
	err := Validate(&Config{InitialHour: 24})
	require.ErrorIs(t, err, cycle.ErrInvalidState)

	err = Validate(&Config{InitialHour: -1})
	require.ErrorIs(t, err, cycle.ErrInvalidState)

	// Negative counters.
	require.ErrorIs(t, Validate(&Config{Ticks: -1}), errNegativeTicks)
	require.ErrorIs(t, Validate(&Config{TickInterval: -time.Second}), errNegativeInterval)

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50099",
		Timeout:       2 * time.Second,
		InitialHour:   6,
		Ticks:         48,
		TickInterval:  time.Second,
		Format:        "json",
		LogLevel:      "debug",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_ParsesYAML reads a hand-written settings file with duration strings.
func TestLoad_ParsesYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := "server_addr: 0.0.0.0:6000\ntimeout: 3s\ninitial_hour: 23\ntick_interval: 250ms\nformat: csv\n"

	require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:6000", cfg.ServerAddress)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, 23, cfg.InitialHour)
	require.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	require.Equal(t, "csv", cfg.Format)
	require.Equal(t, DefaultTicks, cfg.Ticks)

	require.NoError(t, os.WriteFile(path, []byte("initial_hour: 30\n"), DefaultFilePermissions))

	_, err = Load(path)
	require.ErrorIs(t, err, cycle.ErrInvalidState)
}

// TestLoad_MissingFile distinguishes the implicit default file from an explicit path.
func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	require.Equal(t, Default(), mustLoadDefault(t))
}

// mustLoadDefault loads the default settings file from an empty working directory.
func mustLoadDefault(t *testing.T) *Config {
	t.Helper()

	if _, err := os.Stat(DefaultConfigFilename); err == nil {
		t.Skip("default settings file present in package directory")
	}

	cfg, err := Load("")
	require.NoError(t, err)

	return cfg
}
