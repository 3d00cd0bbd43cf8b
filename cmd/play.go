package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the gauntlet TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("skip-intro", false, "Skip the splash animation")
}
