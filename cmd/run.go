package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tgillard/clutch/internal/app"
	"github.com/tgillard/clutch/internal/coach"
	"github.com/tgillard/clutch/internal/llm"
	"github.com/tgillard/clutch/internal/store"
)

// runKiosk opens the store, builds the coach, and launches the TUI.
func runKiosk(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}

	opts := app.Options{
		EventRepo: eventRepo,
	}

	// The kiosk must demo without network or API keys, so a missing
	// provider is not an error: the scripted coach takes over.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Running with the simulated coach.")
		opts.Coach = coach.NewSimulator()
		opts.CoachMode = "simulated coach"
	} else {
		opts.Coach = coach.NewService(provider, coach.DefaultConfig())
		opts.CoachMode = provider.ModelID()
	}

	return app.Run(opts)
}
