// Package cli defines Cobra command definitions for the saya CLI.
// This file contains the root command, which launches the chat TUI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saya-chit/saya/internal/config"
	"github.com/saya-chit/saya/internal/history"
	"github.com/saya-chit/saya/internal/llm"
	"github.com/saya-chit/saya/internal/log"
	"github.com/saya-chit/saya/internal/tui"
	"github.com/saya-chit/saya/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "saya",
	Short: "AI pharmacy assistant for guided medication advice",
	Long: `Saya Chit is a guided medical-intake chat. It asks targeted follow-up
questions about your symptoms one at a time, then produces structured
medication advice in Burmese. Completed conversations are saved locally
and can be revisited with 'saya history'.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return cmd.Help()
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}

		cfg, err := config.ReadConfig(home)
		if err != nil {
			// Config not found or invalid, use defaults
			cfg = config.DefaultConfig()
		}

		client := llm.NewClient(llm.Options{
			APIKey:              os.Getenv(cfg.Model.APIKeyEnv),
			BaseURL:             cfg.Model.BaseURL,
			Model:               cfg.Model.Name,
			QuestionTemperature: cfg.Model.QuestionTemperature,
			FinalTemperature:    cfg.Model.FinalTemperature,
		})

		store, closeStore := openStore(home, cfg)
		defer closeStore()

		// The event log is optional; the chat works without it.
		logger, err := log.NewLogger(config.Dir(home))
		if err != nil {
			logger = nil
		}

		return tui.Run(app.New(client, store, logger))
	},
}

// openStore opens the durable conversation store, degrading to an
// in-memory store when persistence is disabled or the database cannot be
// opened.
func openStore(home string, cfg *config.Config) (history.Store, func()) {
	if !cfg.History.Enabled {
		return history.NewMemStore(), func() {}
	}

	dbPath := filepath.Join(config.Dir(home), cfg.History.File)
	if err := os.MkdirAll(config.Dir(home), 0755); err != nil {
		return history.NewMemStore(), func() {}
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return history.NewMemStore(), func() {}
	}
	return store, func() { _ = store.Close() }
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
}
