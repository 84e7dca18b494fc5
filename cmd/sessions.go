package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgillard/clutch/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent booth sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		sessions, err := repo.RecentSessions(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-16s  %-8s  %-8s  %-6s  %-9s  %s\n",
			"Timestamp", "Gamertag", "Game", "Duration", "Advice", "Rewritten", "Rejected")
		fmt.Println(strings.Repeat("─", 84))

		for _, sess := range sessions {
			fmt.Printf("%-19s  %-16s  %-8s  %5d:%02d  %-6d  %-9d  %d\n",
				sess.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sess.Gamertag,
				sess.Game,
				sess.DurationSecs/60, sess.DurationSecs%60,
				sess.AdviceShown,
				sess.AdviceRewritten,
				sess.AdviceRejected,
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
