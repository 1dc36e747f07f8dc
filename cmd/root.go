package cmd

import (
	"fmt"
	"os"

	"github.com/negative-space-software/fileshare-cli/pkg/conf"
	"github.com/negative-space-software/fileshare-cli/pkg/conout"
	"github.com/negative-space-software/fileshare-cli/pkg/slog"
	"github.com/negative-space-software/fileshare-cli/pkg/transfer"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fileshare",
	Short: "Fileshare - upload files to your own sharing server",
	Long: `Fileshare uploads files and folders to a self-hosted server over
SFTP and hands back the public URL they are served from.

Running it without a subcommand starts an upload.`,
	Args:          cobra.NoArgs,
	RunE:          runUpload,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Global flags
var (
	gVerbose string
	gNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&gVerbose, "verbose", "warn", "Sets log verbosity [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVar(&gNoColor, "no-color", false, "Disables colored output")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows binary build info",
	Run: func(cmd *cobra.Command, args []string) {
		conf.PrintVersion()
	},
}

// cmdEnv bundles what every orchestrator needs: settings, a console
// for user output, a logger for diagnostics and the transfer client
type cmdEnv struct {
	settings *conf.Settings
	console  *conout.Console
	logger   *slog.Logger
	client   *transfer.Client
}

func newCmdEnv() (*cmdEnv, error) {
	logger := slog.NewLogger("fileshare ")
	if err := logger.SetLevel(gVerbose); err != nil {
		return nil, err
	}
	if !gNoColor {
		logger.WithColors()
	}

	settings, err := conf.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	console := conout.NewConsole(os.Stdout)
	if gNoColor {
		console.WithoutColors()
	}

	return &cmdEnv{
		settings: settings,
		console:  console,
		logger:   logger,
		client:   transfer.NewClient(settings, logger),
	}, nil
}

// requireConfigured guards every command that opens a remote session
func (e *cmdEnv) requireConfigured() error {
	if e.settings.IsConfigured() {
		return nil
	}
	e.console.PrintlnErrorStep("SSH key not found at %s", e.settings.KeyPath())
	e.console.PrintlnInfoStep("Run \"fileshare setup\" to point at an existing key")
	return fmt.Errorf("missing ssh key %s", e.settings.KeyPath())
}

// Execute runs the root command. Errors are printed with their complete
// detail and terminate the process with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console := conout.NewConsole(os.Stderr)
		console.PrintlnErrorStep("%v", err)
		os.Exit(1)
	}
}
