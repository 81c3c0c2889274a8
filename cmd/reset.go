package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzk/denizci/internal/identity"
	"github.com/oguzk/denizci/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset <name>",
	Short: "Reset a learner's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sy, _, err := buildSyncer(cmd)
		if err != nil {
			return err
		}

		name, err := identity.Normalize(args[0])
		if err != nil {
			return err
		}

		if err := sy.Save(name, progress.NewRecord()); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
		fmt.Printf("Progress for %s reset.\n", name)
		return nil
	},
}
