package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/show"
	"tableflip.dev/trio/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print one day's ledger",
		Example: `
trio get --on="2024-05-01"
trio get --on="5/1" --index
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetDay()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				On:        on,
				ShowIndex: io.ShowIndex,
				Service:   ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIndexArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
