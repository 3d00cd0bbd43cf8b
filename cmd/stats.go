package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the open set's standing",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := currentSet(cmd, svc)
		if err != nil {
			return err
		}

		sum, err := svc.SetSummary(cmd.Context(), set.SetID, resolveUser(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Set:           %s (%s, %s)\n", sum.SetID, sum.Tier, sum.Status)
		fmt.Printf("Score:         %d\n", sum.Score)
		fmt.Printf("Answered:      %d (%d correct)\n", sum.Attempted, sum.Correct)
		fmt.Printf("  Mentor:      %d correct\n", sum.CorrectMain)
		fmt.Printf("  Wildcard:    %d correct\n", sum.CorrectRandom)
		fmt.Printf("  Boss:        %d correct\n", sum.CorrectBoss)
		fmt.Printf("Cursor:        %d\n", sum.NextIndex)
		fmt.Printf("Boss unlocked: %v\n", sum.BossUnlocked)
		return nil
	},
}
