package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/solar-cycle/internal/cli"
	"github.com/oshokin/solar-cycle/internal/config"
	"github.com/oshokin/solar-cycle/internal/service/server"
	"github.com/oshokin/solar-cycle/internal/version"
)

// NewRootCommand builds the solar-cycle-server command.
func NewRootCommand() *cobra.Command {
	var (
		configPath  string
		logLevel    string
		initialHour int
	)

	root := &cobra.Command{
		Use:   "solar-cycle-server [listen-address]",
		Short: "Serve one shared hour cycle over gRPC.",
		Long: `Starts the gRPC server that owns a single hour cycle and answers
current, advance, set, angle and reading requests.

Only the port from server_addr in the configuration is used for listening (e.g. :50061).
A listen address argument overrides it (e.g. :9090, 0.0.0.0:8080).
The cycle starts at the configured initial hour and is not kept across restarts.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cli.ApplyLogLevel(logLevel, configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			}

			if cmd.Flags().Changed("initial-hour") {
				options.InitialHour = &initialHour
			}

			return server.Run(ctx, options)
		},
	}

	root.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().IntVar(&initialHour, "initial-hour", 0, "hour in [0, 23] the cycle starts at (default from config)")

	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the solar-cycle-server CLI and exits with a non-zero status on error.
func Execute() {
	err := NewRootCommand().ExecuteContext(context.Background())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}

	if code := cli.ExitCode(err); code != cli.ExitSuccess {
		os.Exit(code)
	}
}
