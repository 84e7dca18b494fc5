package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tgillard/clutch/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "clutch",
	Short: "Esports booth coaching kiosk",
	Long:  "Clutch — terminal kiosk for event booths. Live AI coaching over a simulated match, with every piece of advice verified against pro guidance before it hits the screen.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKiosk(cmd)
	},
}

func Execute() error {
	// Booth machines keep API keys in a local .env next to the binary.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLUTCH_DB env var)")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLUTCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
