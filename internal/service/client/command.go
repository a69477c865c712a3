package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	"github.com/oshokin/solar-cycle/internal/logger"
	"github.com/oshokin/solar-cycle/internal/service/common"
)

// Action names a remote operation.
type Action string

const (
	// ActionCurrent reads the current hour.
	ActionCurrent Action = "current"
	// ActionAdvance advances the cycle by one hour.
	ActionAdvance Action = "advance"
	// ActionSet force-sets the hour.
	ActionSet Action = "set"
	// ActionAngle queries the angle for an arbitrary hour.
	ActionAngle Action = "angle"
	// ActionReading reads the current hour with its angle.
	ActionReading Action = "reading"
)

// Options configures a single remote call.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Action selects the operation.
	Action Action
	// Hour is the argument of ActionSet and ActionAngle.
	Hour int
	// Out receives the printed result.
	Out io.Writer
}

// errUnknownAction is returned for an unsupported Action.
var errUnknownAction = errors.New("unknown action")

// Run connects to the server, performs opts.Action and prints the result.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "cycle-client")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	dialOptions := []common.Option{common.WithCallTimeout(cfg.Timeout)}

	caller, actorErr := common.DetectActor()
	if actorErr != nil {
		logger.WarnKV(ctx, "Unable to detect actor, calling anonymously", "error", actorErr)
	} else {
		dialOptions = append(dialOptions, common.WithActor(caller))
	}

	c, err := common.Dial(ctx, serverAddress, dialOptions...)
	if err != nil {
		return err
	}

	defer func() {
		_ = c.Close()
	}()

	logger.DebugKV(ctx, "Calling cycle server", "server_address", serverAddress, "action", opts.Action)

	return perform(ctx, c, opts)
}

// perform executes the action on c and writes its result to opts.Out.
func perform(ctx context.Context, c *common.Client, opts *Options) error {
	switch opts.Action {
	case ActionCurrent:
		hour, err := c.CurrentHour(ctx)
		if err != nil {
			return err
		}

		return printf(opts.Out, "%d\n", hour.Int())
	case ActionAdvance:
		hour, err := c.AdvanceHour(ctx)
		if err != nil {
			return err
		}

		return printf(opts.Out, "%d\n", hour.Int())
	case ActionSet:
		hour, err := c.SetHour(ctx, opts.Hour)
		if err != nil {
			return err
		}

		return printf(opts.Out, "%d\n", hour.Int())
	case ActionAngle:
		angle, err := c.Angle(ctx, opts.Hour)
		if err != nil {
			return err
		}

		return printf(opts.Out, "%.2f\n", angle)
	case ActionReading:
		reading, err := c.Reading(ctx)
		if err != nil {
			return err
		}

		return printf(opts.Out, "%s\n", FormatReading(reading))
	default:
		return fmt.Errorf("%w: %q", errUnknownAction, opts.Action)
	}
}

// FormatReading renders a reading as a single human-readable line.
func FormatReading(r tick.Reading) string {
	sun := "below horizon"
	if r.Daylight {
		sun = "above horizon"
	}

	return fmt.Sprintf("%s (tick %d): %.2f° %s", r.Hour, r.Tick, r.Angle, sun)
}

// printf writes to out, ignoring a nil writer.
func printf(out io.Writer, format string, args ...any) error {
	if out == nil {
		return nil
	}

	if _, err := fmt.Fprintf(out, format, args...); err != nil {
		return fmt.Errorf("print result: %w", err)
	}

	return nil
}
