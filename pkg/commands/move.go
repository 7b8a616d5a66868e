package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/move"
	"tableflip.dev/trio/pkg/store"
	"tableflip.dev/trio/pkg/timeutil"
)

func addMove(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	oo := &options.OnOptions{}
	to := ""

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reschedule a focus task onto a later day",
		Long: `Reschedule a focus task onto a strictly later day. The task lands
in the target day's best slot (first empty, else first not done, else last)
and the source slot is cleared.`,
		Example: `
trio move --slot=1 --to="2024-05-02"
trio move --slot=3 --on="2024-05-01" --to="2024-05-06"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if to == "" {
				return errors.New("requires --to, the target day")
			}
			if !timeutil.Valid(to) {
				return errors.New("invalid --to date, want yyyy-mm-dd")
			}
			label, err := so.Label()
			if err != nil {
				return err
			}
			from, err := oo.GetDay()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				From:    from,
				To:      to,
				Label:   label,
				Service: ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSlotArgs(cmd, so)
	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVar(&to, "to", "", `The target day, example: --to="2024-05-02".`)

	topLevel.AddCommand(cmd)
}
