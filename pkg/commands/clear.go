package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/edit"
	"tableflip.dev/trio/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty a focus slot, resetting its done state and note",
		Example: `
trio clear --slot=3
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
			s := edit.Edit{
				On:      on,
				Label:   label,
				Clear:   true,
				Service: ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSlotArgs(cmd, so)
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
