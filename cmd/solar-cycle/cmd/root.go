package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/solar-cycle/internal/cli"
	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/domain/solar"
	"github.com/oshokin/solar-cycle/internal/report"
	"github.com/oshokin/solar-cycle/internal/service/client"
	"github.com/oshokin/solar-cycle/internal/service/simulator"
	"github.com/oshokin/solar-cycle/internal/version"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level when set.
	logLevel string
	// serverAddress overrides the configured server for remote subcommands.
	serverAddress string
}

// NewRootCommand builds the solar-cycle command tree.
func NewRootCommand() *cobra.Command {
	opts := new(rootOptions)

	root := &cobra.Command{
		Use:   "solar-cycle",
		Short: "Drive a 24-hour cycle and compute the sun's elevation for each hour.",
		Long: `Models a day as 24 hour-states that advance cyclically (23 wraps to 0)
and derives a stylized solar elevation for each hour: 0° at hour 0, +90° at hour 6,
0° at hour 12 and -90° at hour 18.

Use "simulate" to drive a local cycle, "angle" to query the model for any hour,
and current, advance, set or reading to operate on the cycle held by solar-cycle-server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cli.ApplyLogLevel(opts.logLevel, opts.configPath)
		},
	}

	root.PersistentFlags().
		StringVarP(&opts.configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSimulateCommand(opts),
		newAngleCommand(opts),
		newRemoteCommand(opts, client.ActionCurrent, "current", "Print the server's current hour.", cobra.NoArgs),
		newRemoteCommand(opts, client.ActionAdvance, "advance",
			"Advance the server's cycle by one hour and print the new hour.", cobra.NoArgs),
		newRemoteCommand(opts, client.ActionSet, "set <hour>",
			"Force the server's cycle to an hour in [0, 23].", cobra.ExactArgs(1)),
		newRemoteCommand(opts, client.ActionReading, "reading",
			"Print the server's current hour with its angle.", cobra.NoArgs),
	)

	version.AttachCobraVersionCommand(root)

	return root
}

func newSimulateCommand(root *rootOptions) *cobra.Command {
	var (
		opts      simulator.Options
		startHour int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the cycle locally and report every tick.",
		Long: fmt.Sprintf(`Reads the current hour, computes its angle, reports the pair and advances,
once per tick. Defaults to one day (24 ticks) starting at the configured hour.

Formats: %v. The sqlite format requires --output and appends to a readings table.`, report.Formats()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			opts.ConfigPath = root.configPath
			opts.Out = cmd.OutOrStdout()

			if cmd.Flags().Changed("start") {
				opts.StartHour = &startHour
			}

			return simulator.Run(ctx, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Ticks, "ticks", "n", 0, "number of ticks to run (default from config)")
	cmd.Flags().IntVarP(&startHour, "start", "s", 0, "initial hour in [0, 23] (default from config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "report format (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "report destination (default stdout)")
	cmd.Flags().DurationVarP(&opts.Interval, "interval", "i", 0, "wait between ticks, e.g. 1s")

	return cmd
}

func newAngleCommand(root *rootOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "angle <hour>",
		Short: "Print the sun's elevation for any integer hour.",
		Long: `Prints the elevation in degrees for an hour. Any integer is accepted and
reduced modulo 24, so 30 is hour 6 and -6 is hour 18. Pass negative hours after
"--", e.g. "solar-cycle angle -- -6". With --remote the server answers the query.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := parseHour(args[0])
			if err != nil {
				return err
			}

			if remote {
				return runRemote(cmd, root, client.ActionAngle, hour)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", solar.AngleForHour(hour))

			return err
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "ask the server instead of computing locally")
	cmd.Flags().StringVar(&root.serverAddress, "server", "", "server address (default from config)")

	return cmd
}

// newRemoteCommand builds a subcommand performing action on the server.
func newRemoteCommand(
	root *rootOptions,
	action client.Action,
	use, short string,
	positional cobra.PositionalArgs,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			var hour int

			if len(args) > 0 {
				parsed, err := parseHour(args[0])
				if err != nil {
					return err
				}

				hour = parsed
			}

			return runRemote(cmd, root, action, hour)
		},
	}

	cmd.Flags().StringVar(&root.serverAddress, "server", "", "server address (default from config)")

	return cmd
}

func runRemote(cmd *cobra.Command, root *rootOptions, action client.Action, hour int) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return client.Run(ctx, &client.Options{
		ConfigPath:    root.configPath,
		ServerAddress: root.serverAddress,
		Action:        action,
		Hour:          hour,
		Out:           cmd.OutOrStdout(),
	})
}

func parseHour(s string) (int, error) {
	hour, err := strconv.Atoi(s)
	if err != nil {
		return 0, cli.WrapExitError(cli.ExitInvalidInput, fmt.Sprintf("hour %q is not an integer", s), err)
	}

	return hour, nil
}

// Execute runs the solar-cycle CLI and exits with a non-zero status on error.
func Execute() {
	err := NewRootCommand().ExecuteContext(context.Background())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}

	if code := cli.ExitCode(err); code != cli.ExitSuccess {
		os.Exit(code)
	}
}
