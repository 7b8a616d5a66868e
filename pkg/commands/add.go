package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/add"
	"tableflip.dev/trio/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	po := &options.PriorityOptions{}
	inbox := false
	text := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to overflow, or to the inbox with --inbox",
		Example: `
trio add water the plants
trio add --inbox --priority=must renew the passport
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			text = strings.Join(args, " ")
			return nil
		},
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
			s := add.Add{
				On:       on,
				Inbox:    inbox,
				Priority: po.Get(),
				Text:     text,
				Service:  ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddPriorityArgs(cmd, po)
	cmd.Flags().BoolVar(&inbox, "inbox", false, "Add to the inbox instead of overflow.")

	topLevel.AddCommand(cmd)
}
