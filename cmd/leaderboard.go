package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzk/denizci/internal/progress"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		sy, b, err := buildSyncer(cmd)
		if err != nil {
			return err
		}
		if sy.CloudEnabled() {
			sy.SyncAll(cmd.Context())
		}

		rows := progress.Leaderboard(sy.Store().LoadAll(), b.Questions)
		if len(rows) == 0 {
			fmt.Println("No learners yet.")
			return nil
		}

		for i, row := range rows {
			fmt.Printf("%2d. %-20s %4d correct  %4d answered  %3d%%\n",
				i+1, row.Name, row.Correct, row.Answered, row.Percentage)
		}
		return nil
	},
}
