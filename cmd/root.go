package cmd

import (
	"fmt"

	"github.com/mkoehler/sprechzeit/internal/config"
	"github.com/mkoehler/sprechzeit/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprechzeit",
	Short: "Sprechtraining für Deutsch im Terminal",
	Long: "Sprechzeit — terminal coach for spoken German practice. Record short\n" +
		"answers, get transcript quality feedback, work through learning paths\n" +
		"and track progress per practice mode.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPRECHZEIT_DB env var)")

	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPRECHZEIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the SQLite store for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// fileConfig loads the optional TOML config. A missing file yields the
// zero value; a malformed one fails the command.
func fileConfig() (config.FileConfig, error) {
	return config.Load(config.DefaultConfigPath())
}

// stringDefault resolves a flag value against a config file fallback.
func stringDefault(flagValue string, fileValue *string, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if fileValue != nil && *fileValue != "" {
		return *fileValue
	}
	return fallback
}
