package cli

import (
	"fmt"

	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/logger"
)

// ApplyLogLevel sets the global log level from flagValue, or from the
// settings file at configPath when the flag is empty.
// An unreadable settings file is left for the command itself to report.
func ApplyLogLevel(flagValue, configPath string) error {
	name := flagValue
	if name == "" {
		settings, err := config.Load(configPath)
		if err != nil {
			return nil //nolint:nilerr // The command reports config errors with more context.
		}

		name = settings.LogLevel
	}

	if name == "" {
		return nil
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return NewExitError(ExitInvalidInput, fmt.Sprintf("invalid log level %q", name))
	}

	logger.SetLevel(level)

	return nil
}
