package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/gauntlet/internal/game"
)

var mentorCmd = &cobra.Command{
	Use:   "mentor",
	Short: "Face mentors of the current set",
}

var mentorListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show per-mentor progress for the open set",
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

		progress, err := svc.MentorProgress(cmd.Context(), set.SetID, resolveUser(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("%-12s  %-20s  %8s  %7s\n", "Name", "Display", "Answered", "Correct")
		for _, ms := range progress {
			fmt.Printf("%-12s  %-20s  %5d/%-2d  %7d\n",
				ms.Name, ms.DisplayName, ms.Answered, ms.Total, ms.Correct)
		}
		return nil
	},
}

var mentorNextCmd = &cobra.Command{
	Use:   "next <mentor>",
	Short: "Show the mentor's next challenge",
	Args:  cobra.ExactArgs(1),
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

		next, err := svc.NextForMentor(cmd.Context(), set.SetID, args[0], resolveUser(cmd))
		if err != nil {
			return err
		}
		if next.Finished {
			fmt.Printf("%s has nothing left for you.\n", args[0])
			return nil
		}
		printItem(next.Item)
		return nil
	},
}

var mentorAnswerCmd = &cobra.Command{
	Use:   "answer <mentor> <index> <option>",
	Short: "Answer a mentor challenge (option is 1-4)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		answer, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid option %q: %w", args[2], err)
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

		res, err := svc.AnswerMentorItem(cmd.Context(), set.SetID, args[0], resolveUser(cmd), index, answer)
		if err != nil {
			return err
		}
		printAnswer(res)
		if res.MentorFinished {
			fmt.Printf("%s is done with you.\n", args[0])
		}
		return nil
	},
}

// currentSet resolves the user's open set for the selected tier.
func currentSet(cmd *cobra.Command, svc *game.Service) (*game.StartResult, error) {
	tier, err := resolveTier(cmd)
	if err != nil {
		return nil, err
	}
	set, err := svc.CurrentSet(cmd.Context(), resolveUser(cmd), tier)
	if err == game.ErrSetNotFound {
		return nil, fmt.Errorf("no open %s set: run `gauntlet start` first", tier)
	}
	return set, err
}

// printItem renders one challenge for the terminal.
func printItem(item *game.ItemView) {
	fmt.Printf("[%d] %s", item.Index, item.Question)
	if item.Mentor != "" {
		fmt.Printf("  (%s, %s)", item.Mentor, item.Kind)
	} else {
		fmt.Printf("  (%s)", item.Kind)
	}
	fmt.Println()
	for i, opt := range item.Options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
}

// printAnswer renders the judgment for a recorded answer.
func printAnswer(res *game.AnswerResult) {
	if res.Correct {
		fmt.Println("Correct!")
		if res.Explanation != "" {
			fmt.Println(res.Explanation)
		}
	} else {
		fmt.Println("Not quite.")
	}
	if res.Completed {
		fmt.Println("The set is complete.")
	} else {
		fmt.Printf("Cursor: %d\n", res.NextIndex)
	}
}

func init() {
	mentorCmd.AddCommand(mentorListCmd)
	mentorCmd.AddCommand(mentorNextCmd)
	mentorCmd.AddCommand(mentorAnswerCmd)
}
