package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Resume or generate the current set for a tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tier, err := resolveTier(cmd)
		if err != nil {
			return err
		}

		res, err := svc.StartTier(cmd.Context(), resolveUser(cmd), tier)
		if err != nil {
			return err
		}

		verb := "generated"
		if res.Reused {
			verb = "resumed"
		}
		fmt.Printf("Set %s (%s)\n", verb, res.Tier)
		fmt.Printf("  ID:            %s\n", res.SetID)
		fmt.Printf("  Status:        %s\n", res.Status)
		fmt.Printf("  Next index:    %d\n", res.NextIndex)
		fmt.Printf("  Boss unlocked: %v\n", res.BossUnlocked)
		return nil
	},
}
