package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/app"
	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/llm"
	"github.com/abhisek/gauntlet/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	tier, err := resolveTier(cmd)
	if err != nil {
		return err
	}

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	opts := app.Options{
		UserID:    resolveUser(cmd),
		Tier:      tier,
		SkipIntro: skipIntro,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set generation will be unavailable.")
	} else {
		gen := genset.New(provider, genset.DefaultConfig())
		opts.Game = game.New(st, gen)
	}

	return app.Run(opts)
}

// buildService opens the store and wires the game service for one-shot
// CLI commands. The caller must Close the returned store.
func buildService(cmd *cobra.Command) (*game.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		// Commands that never generate still work; StartTier will fail
		// with a clear provider error if reached.
		provider = nil
	}
	var gen genset.Generator
	if provider != nil {
		gen = genset.New(provider, genset.DefaultConfig())
	} else {
		gen = unavailableGenerator{}
	}

	return game.New(st, gen), st, nil
}

// unavailableGenerator fails generation with a configuration hint.
type unavailableGenerator struct{}

func (unavailableGenerator) GenerateSet(ctx context.Context, input genset.GenerateInput) ([]genset.Candidate, error) {
	return nil, fmt.Errorf("no LLM provider configured: set GAUNTLET_LLM_PROVIDER and its API key")
}
