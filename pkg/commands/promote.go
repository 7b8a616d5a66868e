package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/promote"
	"tableflip.dev/trio/pkg/store"
)

func addPromote(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IndexOptions{}
	inbox := false

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Lift an overflow or inbox task into an empty focus slot",
		Long: `Lift an overflow or inbox task into the first empty focus slot.
Fails when all three slots are taken; clear or demote one first.`,
		Example: `
trio promote -i 0
trio promote --inbox -i 2
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
			s := promote.Promote{
				On:      on,
				Inbox:   inbox,
				Index:   io.Index,
				Service: ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddIndexArgs(cmd, io)
	cmd.Flags().BoolVar(&inbox, "inbox", false, "Promote from the inbox instead of overflow.")

	topLevel.AddCommand(cmd)
}
