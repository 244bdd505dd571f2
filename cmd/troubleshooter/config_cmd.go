package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/troubleshooter/internal/config"
	"github.com/muurk/troubleshooter/internal/logging"
)

var forceInit bool

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
}

// configCmd groups the configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Manage the troubleshooter configuration file.

The file stores display and logging preferences. Wizard selections are
never saved.`,
	// Replaces the root setup so a broken file can still be located and rewritten
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeWithOptions(logging.Options{Level: logLevel, OutputPath: logFile})
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := loaded.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Example: `  troubleshooter config init
  troubleshooter config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if configFile != "" {
			if _, err := os.Stat(configFile); err == nil && !forceInit {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configFile)
			}
			if err := config.New().SaveFile(configFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default configuration to %s\n", configFile)
			return nil
		}

		path, err := config.CreateDefaultConfig(forceInit)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote default configuration to %s\n", path)
		return nil
	},
}
