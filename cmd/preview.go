package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/verify"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the simulated coach against the verifier (no database)",
	Long: `Run the scripted advice deck for a game through the verifier and print
each verdict.

Stateless developer tool — no database, no events. Useful for checking that
a deck still exercises both acceptance and rejection paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		game, _ := cmd.Flags().GetString("game")
		count, _ := cmd.Flags().GetInt("count")

		v, err := verifierFor(game)
		if err != nil {
			return err
		}

		sim := coach.NewSimulator()
		state := coach.GameState{Game: verify.Game(strings.ToLower(game)), Gamertag: "preview"}

		for i := 0; i < count; i++ {
			sim.RequestAdvice(context.Background(), state)
			adv, ok := sim.ConsumeAdvice()
			if !ok || adv == nil {
				break
			}

			verdict := v.VerifyAdvice(adv.Text, nil)
			mark := "✓"
			if !verdict.IsValid {
				mark = "✗"
			}
			fmt.Printf("%s [%.2f] %s\n", mark, verdict.Confidence, adv.Text)
			if verdict.ModifiedAdvice != "" {
				fmt.Printf("    → %s\n", verdict.ModifiedAdvice)
			}
			if verdict.Warning != "" {
				fmt.Printf("    ! %s\n", verdict.Warning)
			}
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("game", "g", "moba", "Game syllabus: moba, fps, or strategy")
	previewCmd.Flags().IntP("count", "n", 10, "Number of advice lines to run")
}
