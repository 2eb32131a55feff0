// Package commands implements the CLI commands for sysdirs.
package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sysdirs/internal/config"
	"github.com/thoreinstein/sysdirs/internal/errors"
	"github.com/thoreinstein/sysdirs/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// noColor holds the value of the --no-color flag.
var noColor bool

// loadedConfig holds the configuration loaded at startup.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	// Add persistent flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colorized output")

	// Add version flag
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("sysdirs version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "sysdirs",
	Short: "Query the platform's standard user directories",
	Long: `sysdirs resolves the standard user directories of the current
platform: cache, config, data, state, runtime, and the well-known
user-facing folders (Desktop, Documents, Downloads, Music, and so on).

On Linux it follows the XDG Base Directory and XDG User Directories
specifications, on macOS the Standard Directories, and on Windows the
Known Folder locations. A directory can be legitimately absent on a
platform; sysdirs reports absence rather than inventing a path.`,
	Example: `  # List every directory the platform defines
  sysdirs list

  # Resolve a single directory
  sysdirs get config

  # Create an application subdirectory under the data dir
  sysdirs ensure data myapp

  # Fuzzy-pick a directory interactively
  sysdirs pick`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config values seed the defaults; explicit flags win
		applyConfig(cmd)
		if noColor {
			color.NoColor = true
		}
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		// Check for config load errors
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "Check the syntax of your sysdirs config file")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// applyConfig folds the loaded configuration into the defaults of the
// invoked command. A flag the user set explicitly is never overridden.
func applyConfig(cmd *cobra.Command) {
	if loadedConfig == nil {
		return
	}

	if f := cmd.Flags().Lookup("format"); f != nil && !f.Changed && loadedConfig.Format != "" {
		listFormat = loadedConfig.Format
	}

	switch loadedConfig.Color {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	}
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("SYSDIRS_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
