package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Load the first batch of reviews and show the queue state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			next, err := a.Session.Current(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap := a.Session.Snapshot()
			fmt.Fprintf(out, "Learner:   %s\n", a.Token.LearnerID)
			fmt.Fprintf(out, "Languages: %s → %s\n", a.Config.Learner.LearningLang, a.Config.Learner.NativeLang)
			fmt.Fprintf(out, "Buffered:  %d\n", snap.Count)
			fmt.Fprintf(out, "More:      %t\n", snap.HasMore)
			if next != nil {
				fmt.Fprintf(out, "Next:      %s\n", next.Prompt)
			} else {
				fmt.Fprintln(out, "Nothing to review right now.")
			}
			return nil
		},
	}
}
