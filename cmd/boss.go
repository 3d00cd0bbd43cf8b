package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bossCmd = &cobra.Command{
	Use:   "boss",
	Short: "Approach the boss gate",
}

var bossStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show eligibility for the boss gate",
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

		el, err := svc.BossEligibility(cmd.Context(), set.SetID)
		if err != nil {
			return err
		}

		fmt.Printf("Correct:   %d/%d (main %d, random %d)\n",
			el.Correct, el.Threshold, el.CorrectMain, el.CorrectRandom)
		fmt.Printf("Rule:      %s\n", el.Rule)
		switch {
		case set.BossUnlocked:
			fmt.Println("Gate:      open")
		case el.Eligible:
			fmt.Println("Gate:      shut, but you qualify — run `gauntlet boss unlock`")
		default:
			fmt.Printf("Gate:      shut, %d more correct needed\n", el.Pending)
		}
		return nil
	},
}

var bossUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Break the boss gate seal",
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

		res, err := svc.UnlockBoss(cmd.Context(), set.SetID, resolveUser(cmd))
		if err != nil {
			return err
		}
		if res.Already {
			fmt.Println("The gate was already open.")
			return nil
		}
		fmt.Printf("The gate opens. %d correct answers carried you through.\n", res.Correct)
		return nil
	},
}

var bossNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next boss challenge",
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

		userID := resolveUser(cmd)
		index, done, err := svc.NextBossIndex(cmd.Context(), set.SetID, userID)
		if err != nil {
			return err
		}
		if done {
			fmt.Println("No boss stages remain.")
			return nil
		}
		item, err := svc.BossItem(cmd.Context(), set.SetID, userID, index)
		if err != nil {
			return err
		}
		printItem(item)
		return nil
	},
}

var bossAnswerCmd = &cobra.Command{
	Use:   "answer <index> <option>",
	Short: "Answer a boss challenge (option is 1-4)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		answer, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid option %q: %w", args[1], err)
		}

		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := currentSet(cmd, svc)
		if err != nil {
			return err
		}

		res, err := svc.AnswerBossItem(cmd.Context(), set.SetID, resolveUser(cmd), index, answer)
		if err != nil {
			return err
		}
		printAnswer(res)
		return nil
	},
}

func init() {
	bossCmd.AddCommand(bossStatusCmd)
	bossCmd.AddCommand(bossUnlockCmd)
	bossCmd.AddCommand(bossNextCmd)
	bossCmd.AddCommand(bossAnswerCmd)
}
