package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/genset"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear recorded attempts for the open set",
	Long: `Clear attempts for a range of item indexes on the open set.

By default the boss range is cleared so the boss sub-flow can be retried.
Use --from/--to for an explicit range. Score and cursor are untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")

		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := currentSet(cmd, svc)
		if err != nil {
			return err
		}

		userID := resolveUser(cmd)
		var deleted int
		if cmd.Flags().Changed("from") || cmd.Flags().Changed("to") {
			if from < 1 || to > genset.TotalItems || from > to {
				return fmt.Errorf("invalid range %d..%d: must lie within 1..%d", from, to, genset.TotalItems)
			}
			deleted, err = svc.ResetAttempts(cmd.Context(), set.SetID, userID, from, to)
		} else {
			deleted, err = svc.ResetBossAttempts(cmd.Context(), set.SetID, userID)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Cleared %d attempt(s).\n", deleted)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int("from", genset.BossRangeStart, "First item index to clear")
	resetCmd.Flags().Int("to", genset.TotalItems, "Last item index to clear")
}
