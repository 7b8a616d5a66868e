package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/shuffle"
	"tableflip.dev/trio/pkg/store"
)

func addShuffle(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IndexOptions{}
	po := &options.PriorityOptions{}
	toOverflow := false

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Move a task between overflow and the inbox",
		Example: `
trio shuffle -i 0 --priority=must
trio shuffle --to-overflow -i 1
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
			s := shuffle.Shuffle{
				On:         on,
				ToOverflow: toOverflow,
				Index:      io.Index,
				Priority:   po.Get(),
				Service:    ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddIndexArgs(cmd, io)
	options.AddPriorityArgs(cmd, po)
	cmd.Flags().BoolVar(&toOverflow, "to-overflow", false,
		"Move inbox -> overflow instead of overflow -> inbox.")

	topLevel.AddCommand(cmd)
}
