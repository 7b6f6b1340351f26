// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles config load and backend lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	backend   storage.Backend
	dataStore *store.Store

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for tracking daily fitness data.

WHAT IT TRACKS:

  Body           weight (kg), waist (cm)
  Nutrition      daily calories, carbs, protein, fat
  Activities     cardio and strength sessions with duration, distance, calories

Each date holds at most one day record; activities are an append-only log.
Calories logged on an activity automatically roll up into the day's
active calories.

QUICK START:

  $ fittrack log --weight 82.5              # Log today's weight
  $ fittrack log 01/15/2024 --calories 2100 # Log calories for a date
  $ fittrack activity add Cardio "🏃🏽‍♂️ Running" -d 30m --calories 300
  $ fittrack show                           # Today's record and activities
  $ fittrack stats weight                   # Latest value, delta, and mean
  $ fittrack trend weight --horizon "3 Months"

BULK EDITING:

  Export a table, edit it in a spreadsheet, and apply it back:

  $ fittrack table export days -o days.csv
  $ fittrack table apply days days.csv      # Rejected if dates collide

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  By default data lives in flat CSV files at ~/.local/share/fittrack.
  Set "backend" to "sqlite" or "charm" in ~/.config/fittrack/config.json
  to use SQLite or encrypted Charm Cloud sync instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log.Debug("opening backend", "backend", cfg.GetBackend(), "dir", cfg.GetDataDir())

		backend, err = cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open backend: %w", err)
		}

		dataStore, err = store.Load(backend)
		if err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
		log.Debug("store loaded", "days", len(dataStore.Days), "activities", len(dataStore.Activities))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if backend != nil {
			return backend.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// saveStore writes the in-memory store back through the backend.
func saveStore() error {
	if err := dataStore.Save(backend); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}
