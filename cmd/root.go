package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "LLM-generated quiz gauntlet in your terminal",
	Long:  "Gauntlet — run a 20-challenge arcade quiz: face five mentors, earn your score, and break the boss gate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GAUNTLET_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Player ID (overrides GAUNTLET_USER env var)")
	rootCmd.PersistentFlags().String("tier", "", "Tier: junior or senior (overrides GAUNTLET_TIER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(mentorCmd)
	rootCmd.AddCommand(bossCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GAUNTLET_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the player ID from --user, GAUNTLET_USER, or a
// single-player default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("GAUNTLET_USER"); u != "" {
		return u
	}
	return "player"
}

// resolveTier returns the tier from --tier or GAUNTLET_TIER, defaulting
// to junior.
func resolveTier(cmd *cobra.Command) (genset.Tier, error) {
	val, _ := cmd.Flags().GetString("tier")
	if val == "" {
		val = os.Getenv("GAUNTLET_TIER")
	}
	if val == "" {
		return genset.TierJunior, nil
	}
	switch strings.ToLower(val) {
	case string(genset.TierJunior):
		return genset.TierJunior, nil
	case string(genset.TierSenior):
		return genset.TierSenior, nil
	default:
		return "", fmt.Errorf("invalid tier %q: must be junior or senior", val)
	}
}
