// ABOUTME: CLI commands for viewing and changing configuration.
// ABOUTME: Backend selection and data directory live in config.json.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change configuration",
	Long: `View or change fittrack configuration.

The config lives at ~/.config/fittrack/config.json. FITTRACK_BACKEND and
FITTRACK_DATA_DIR environment variables override it.

Examples:
  fittrack config show
  fittrack config set backend sqlite
  fittrack config set data-dir ~/fitness`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config file: %s\n", config.GetConfigPath())
		fmt.Printf("backend:     %s\n", cfg.GetBackend())
		fmt.Printf("data dir:    %s\n", cfg.GetDataDir())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"backend", "data-dir"},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		switch key {
		case "backend":
			if value != "csv" && value != "sqlite" && value != "charm" {
				return fmt.Errorf("unknown backend: %s (use csv, sqlite, or charm)", value)
			}
			cfg.Backend = value
		case "data-dir":
			cfg.DataDir = value
		default:
			return fmt.Errorf("unknown key: %s (use backend or data-dir)", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
