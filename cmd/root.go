package cmd

import (
	"github.com/spf13/cobra"

	"github.com/traino-dev/traino/internal/config"
	"github.com/traino-dev/traino/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "traino",
	Short: "AI fitness coach in your terminal",
	Long:  "Traino — a terminal fitness coach that chats with you, tracks your sessions, and levels you up as you train.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TRAINO_DB env var)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then TRAINO_DB, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg, err := config.Load(); err == nil && cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
