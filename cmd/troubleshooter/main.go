// Troubleshooter is a guided troubleshooting assistant.
//
// It asks for a device category, an operating system, and a problem, then
// restates the selection as a resolution summary. The interactive wizard
// runs in the terminal; the same selection rules are available to scripts
// through the resolve command.
//
// Usage:
//
//	troubleshooter [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'troubleshooter --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/troubleshooter/internal/config"
	"github.com/muurk/troubleshooter/internal/logging"
	"github.com/muurk/troubleshooter/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel     string
	logFile      string
	outputFormat string
	configFile   string
)

// cfg is the configuration loaded before any command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "troubleshooter",
	Short: "Guided device troubleshooting assistant",
	Long: `A guided troubleshooting assistant for computers and mobile devices.

Choose a device, its operating system, and the problem you are seeing,
and the assistant restates your selection as a resolution summary.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:           version.Version,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default is the user config directory)")

	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and initializes logging. Flags override the
// configuration file, which overrides the environment.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if outputFormat == "" {
		outputFormat = cfg.Preferences.OutputFormat
	}
	if !config.IsValidFormat(outputFormat) {
		return fmt.Errorf("invalid --format %q (valid: %v)", outputFormat, config.OutputFormats)
	}

	opts := logging.Options{Level: cfg.Preferences.LogLevel, OutputPath: cfg.Preferences.LogFile}
	if logLevel != "" {
		opts.Level = logLevel
	}
	if logFile != "" {
		opts.OutputPath = logFile
	}
	return logging.InitializeWithOptions(opts)
}

// loadConfig reads --config if given, else the default configuration file
func loadConfig() (*config.Config, error) {
	var (
		loaded *config.Config
		err    error
	)
	if configFile != "" {
		loaded, err = config.LoadFile(configFile)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return loaded, nil
}

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "troubleshooter %s\n", version.Full())
		if versionVerbose {
			fmt.Fprintf(out, "platform: %s\n", version.Platform())
		}
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Include Go version and platform")
}
