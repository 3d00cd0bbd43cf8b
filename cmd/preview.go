package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a generated challenge set (no database)",
	Long: `Generate and print one composed challenge set.

This is a stateless developer tool — nothing is persisted and no events
are logged. Useful for evaluating challenge quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("mentors", "", "Comma-separated mentor names (default: the shipped roster)")
	previewCmd.Flags().Bool("answers", false, "Print answer keys and explanations")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tier, err := resolveTier(cmd)
	if err != nil {
		return err
	}

	mentorVal, _ := cmd.Flags().GetString("mentors")
	var mentorNames []string
	if mentorVal != "" {
		for _, name := range strings.Split(mentorVal, ",") {
			if name = strings.TrimSpace(name); name != "" {
				mentorNames = append(mentorNames, name)
			}
		}
	} else {
		for _, m := range defaultMentors {
			mentorNames = append(mentorNames, m.Name)
		}
	}

	// No EventRepo — logging skipped.
	provider, err := llm.NewProviderFromEnv(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := genset.New(provider, genset.DefaultConfig())
	fmt.Printf("Generating a %s set for mentors: %s\n\n", tier, strings.Join(mentorNames, ", "))

	cands, err := gen.GenerateSet(cmd.Context(), genset.GenerateInput{
		Tier:    tier,
		Mentors: mentorNames,
	})
	if err != nil {
		return err
	}

	showAnswers, _ := cmd.Flags().GetBool("answers")
	for i, c := range cands {
		owner := c.Mentor
		if owner == "" {
			owner = "—"
		}
		fmt.Printf("── %2d  %-6s  %s ──\n", i+1, c.Kind, owner)
		fmt.Println(c.Question)
		for j, opt := range c.Options {
			marker := " "
			if showAnswers && j+1 == c.AnswerIndex {
				marker = "*"
			}
			fmt.Printf(" %s%d) %s\n", marker, j+1, opt)
		}
		if showAnswers && c.Explanation != "" {
			fmt.Printf("    %s\n", c.Explanation)
		}
		fmt.Println()
	}
	return nil
}
