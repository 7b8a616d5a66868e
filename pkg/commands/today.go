package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/show"
	"tableflip.dev/trio/pkg/store"
	"tableflip.dev/trio/pkg/timeutil"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's focus slots, overflow, and inbox",
		Example: `
trio today
trio today --index
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				On:        timeutil.Today(),
				ShowIndex: io.ShowIndex,
				Service:   ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIndexArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
