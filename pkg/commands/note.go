package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/edit"
	"tableflip.dev/trio/pkg/store"
)

func addNote(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}
	note := ""

	cmd := &cobra.Command{
		Use:   "note",
		Short: "Attach a note to a focus slot",
		Example: `
trio note --slot=1 waiting on the numbers from accounting
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the note text")
			}
			note = strings.Join(args, " ")
			return nil
		},
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
				Note:    &note,
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
