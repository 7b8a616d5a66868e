package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/toggle"
	"tableflip.dev/trio/pkg/store"
)

func addCheck(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}
	io := &options.IndexOptions{}
	overflow := false
	inbox := false

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"toggle", "done"},
		Short:   "Toggle a task's done state",
		Example: `
trio check --slot=1
trio check --overflow -i 0
trio check --inbox -i 2
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetDay()
			if err != nil {
				return err
			}
			label := ""
			if !overflow && !inbox {
				if label, err = so.Label(); err != nil {
					return err
				}
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := toggle.Toggle{
				On:      on,
				Label:   label,
				Inbox:   inbox,
				Index:   io.Index,
				Service: ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSlotArgs(cmd, so)
	options.AddOnArgs(cmd, oo)
	options.AddIndexArgs(cmd, io)
	cmd.Flags().BoolVar(&overflow, "overflow", false, "Toggle an overflow item by index.")
	cmd.Flags().BoolVar(&inbox, "inbox", false, "Toggle an inbox item by index.")

	topLevel.AddCommand(cmd)
}
