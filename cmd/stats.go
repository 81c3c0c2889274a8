package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oguzk/denizci/internal/identity"
	"github.com/oguzk/denizci/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Print per-section stats for a learner",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sy, b, err := buildSyncer(cmd)
		if err != nil {
			return err
		}

		name := sy.Store().CurrentUser()
		if len(args) == 1 {
			name, err = identity.Normalize(args[0])
			if err != nil {
				return err
			}
		}
		if name == "" {
			return fmt.Errorf("no learner signed in; pass a name")
		}

		rec := sy.Store().Load(name)
		overall := progress.Summarize(rec, b.Questions)
		fmt.Printf("%s — %d/%d answered, %d correct (%d%%)\n\n",
			name, overall.Answered, overall.Total, overall.Correct, overall.Percentage)

		for _, sec := range b.Sections() {
			qs, _ := b.Section(sec)
			st := progress.Summarize(rec, qs)
			mark := " "
			if rec.Completed[sec] {
				mark = "✓"
			}
			fmt.Printf("%s %-24s %3d/%-3d answered  %3d correct  %3d%%\n",
				mark, sec, st.Answered, st.Total, st.Correct, st.Percentage)
		}
		return nil
	},
}
