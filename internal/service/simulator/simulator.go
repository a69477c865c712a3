package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/domain/cycle"
	"github.com/oshokin/solar-cycle/internal/domain/tick"
	"github.com/oshokin/solar-cycle/internal/logger"
	"github.com/oshokin/solar-cycle/internal/report"
)

// Options controls a simulation run. Zero values fall back to configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Ticks overrides the configured tick count when positive.
	Ticks int
	// StartHour overrides the configured initial hour when set.
	StartHour *int
	// Format overrides the configured report format when not empty.
	Format string
	// Output overrides the configured report destination when not empty.
	Output string
	// Interval overrides the configured tick interval when positive.
	Interval time.Duration
	// Out receives stream reports when no output path is set. Defaults to stdout.
	Out io.Writer
}

// Run loads settings, builds a cycle and reports every tick to the selected sink.
// Cancellation stops the run early without an error; readings already
// produced are still flushed.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "simulator")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(cfg, opts)

	if err = config.Validate(cfg); err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	c, err := cycle.New(cycle.WithInitialHour(cfg.InitialHour))
	if err != nil {
		return err
	}

	runID := uuid.Must(uuid.NewV7()).String()
	ctx = logger.WithKV(ctx, "run_id", runID)

	sink, err := report.Open(format, cfg.Output, runID, opts.Out)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}

	logger.InfoKV(
		ctx,
		"Starting simulation",
		"start_hour", c.Current().String(),
		"ticks", cfg.Ticks,
		"interval", cfg.TickInterval.String(),
		"format", format,
	)

	readings, simErr := Simulate(ctx, c, sink, cfg.Ticks, cfg.TickInterval)

	if err = sink.Close(); err != nil {
		simErr = errors.Join(simErr, fmt.Errorf("close report: %w", err))
	}

	if errors.Is(simErr, context.Canceled) {
		logger.InfoKV(ctx, "Simulation interrupted", "completed_ticks", len(readings))

		simErr = nil
	}

	if simErr != nil {
		return simErr
	}

	logSummary(ctx, tick.Summarize(readings), c.Current())

	return nil
}

// Simulate runs ticks steps on c, writing each reading to sink. With a
// positive interval the first tick happens immediately and each following
// one waits for the next interval. It returns the readings produced so far
// together with any error, including ctx.Err() on cancellation.
func Simulate(
	ctx context.Context,
	c *cycle.HourCycle,
	sink report.Sink,
	ticks int,
	interval time.Duration,
) ([]tick.Reading, error) {
	readings := make([]tick.Reading, 0, max(ticks, 0))

	var pace <-chan time.Time

	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		pace = ticker.C
	}

	for i := range ticks {
		if err := ctx.Err(); err != nil {
			return readings, err
		}

		if i > 0 && pace != nil {
			select {
			case <-ctx.Done():
				return readings, ctx.Err()
			case <-pace:
			}
		}

		reading := tick.NewReading(i, c.Current())

		if err := sink.Write(ctx, reading); err != nil {
			return readings, fmt.Errorf("report tick %d: %w", i, err)
		}

		readings = append(readings, reading)

		next := c.Advance()

		logger.DebugKV(ctx, "Tick", "hour", reading.Hour.Int(), "angle", reading.Angle, "next", next.Int())
	}

	return readings, nil
}

// applyOverrides copies explicitly set options over the loaded settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.Ticks > 0 {
		cfg.Ticks = opts.Ticks
	}

	if opts.StartHour != nil {
		cfg.InitialHour = *opts.StartHour
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}

	if opts.Output != "" {
		cfg.Output = opts.Output
	}

	if opts.Interval > 0 {
		cfg.TickInterval = opts.Interval
	}
}

// logSummary reports the extremes and daylight share of a finished run.
func logSummary(ctx context.Context, s tick.Summary, final cycle.Hour) {
	if s.Ticks == 0 {
		logger.Info(ctx, "Simulation produced no readings")

		return
	}

	logger.InfoKV(
		ctx,
		"Simulation finished",
		"ticks", s.Ticks,
		"final_hour", final.String(),
		"peak_hour", s.PeakHour.Int(),
		"peak_angle", s.PeakAngle,
		"trough_hour", s.TroughHour.Int(),
		"trough_angle", s.TroughAngle,
		"mean_angle", s.MeanAngle,
		"daylight_ticks", s.DaylightTicks,
	)
}
