package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tgillard/clutch/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <advice>",
	Short: "Run one piece of advice through a game's verifier",
	Long: `Check a piece of coaching advice against a game syllabus and print the
verdict. Operator smoke-test — no database, no events.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game, _ := cmd.Flags().GetString("game")

		v, err := verifierFor(game)
		if err != nil {
			return err
		}

		advice := strings.Join(args, " ")
		verdict := v.VerifyAdvice(advice, nil)

		if verdict.IsValid {
			fmt.Println("ACCEPTED")
		} else {
			fmt.Println("REJECTED")
		}
		if verdict.Category != "" {
			fmt.Printf("Category:    %s\n", verdict.Category)
		}
		fmt.Printf("Confidence:  %.2f\n", verdict.Confidence)
		if verdict.ModifiedAdvice != "" {
			fmt.Printf("Shown as:    %s\n", verdict.ModifiedAdvice)
		}
		if verdict.Warning != "" {
			fmt.Printf("Warning:     %s\n", verdict.Warning)
		}
		return nil
	},
}

func verifierFor(game string) (*verify.Verifier, error) {
	g := verify.Game(strings.ToLower(game))
	for _, known := range verify.Games() {
		if g == known {
			return verify.New(g), nil
		}
	}
	names := make([]string, 0, len(verify.Games()))
	for _, known := range verify.Games() {
		names = append(names, string(known))
	}
	return nil, fmt.Errorf("unknown game %q (choose one of: %s)", game, strings.Join(names, ", "))
}

func init() {
	verifyCmd.Flags().StringP("game", "g", "moba", "Game syllabus: moba, fps, or strategy")
}
