package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/demote"
	"tableflip.dev/trio/pkg/store"
)

func addDemote(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}
	po := &options.PriorityOptions{}
	inbox := false

	cmd := &cobra.Command{
		Use:   "demote",
		Short: "Push a focus task down into overflow, or into the inbox",
		Example: `
trio demote --slot=2
trio demote --slot=2 --inbox --priority=nice
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			label, err := so.Label()
			if err != nil {
				return err
			}
			on, err := oo.GetDay()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := demote.Demote{
				On:       on,
				Label:    label,
				Inbox:    inbox,
				Priority: po.Get(),
				Service:  ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSlotArgs(cmd, so)
	options.AddOnArgs(cmd, oo)
	options.AddPriorityArgs(cmd, po)
	cmd.Flags().BoolVar(&inbox, "inbox", false, "Demote to the inbox instead of overflow.")

	topLevel.AddCommand(cmd)
}
