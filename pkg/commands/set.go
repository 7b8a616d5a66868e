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

func addSet(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a focus slot's text",
		Long: `Set a focus slot's text. Setting empty text clears the slot,
which also resets its done state and note.`,
		Example: `
trio set --slot=1 write the report
trio set --slot=2 --on="2024-05-01" call the dentist
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the slot text")
			}
			text = strings.Join(args, " ")
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
				Text:    &text,
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
