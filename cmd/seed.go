package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/genset"
	"github.com/abhisek/gauntlet/internal/store"
)

// defaultMentors is the shipped junior-tier roster.
var defaultMentors = []store.Mentor{
	{Name: "Nyra", Tier: "junior", DisplayName: "Nyra the Swift", Position: 1, Flavor: "Answers before you finish reading."},
	{Name: "Kael", Tier: "junior", DisplayName: "Kael the Patient", Position: 2, Flavor: "Waits. Watches. Corrects."},
	{Name: "Thorne", Tier: "junior", DisplayName: "Thorne the Grim", Position: 3, Flavor: "Has never smiled at a wrong answer."},
	{Name: "Iris", Tier: "junior", DisplayName: "Iris the Bright", Position: 4, Flavor: "Every question hides a second one."},
	{Name: "Voss", Tier: "junior", DisplayName: "Voss the Unread", Position: 5, Flavor: "Nobody knows where the questions come from."},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the mentor roster and prompt templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		mentors := st.MentorRepo()
		for _, m := range defaultMentors {
			if err := mentors.Upsert(ctx, m); err != nil {
				return fmt.Errorf("seed mentor %s: %w", m.Name, err)
			}
		}

		templates := st.TemplateRepo()
		for _, tier := range []genset.Tier{genset.TierJunior, genset.TierSenior} {
			key := "set-gen/" + string(tier)
			if err := templates.Upsert(ctx, key, genset.DefaultTemplate); err != nil {
				return fmt.Errorf("seed template %s: %w", key, err)
			}
		}

		fmt.Printf("Seeded %d mentors and 2 templates.\n", len(defaultMentors))
		return nil
	},
}
