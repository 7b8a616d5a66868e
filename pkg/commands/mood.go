package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/runner/mood"
	"tableflip.dev/trio/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	rating := 0

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Log the day's mood, 1 (rough) to 5 (great)",
		Example: `
trio mood 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a rating 1..5")
			}
			var err error
			rating, err = strconv.Atoi(args[0])
			return err
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
			s := mood.Mood{
				On:      on,
				Rating:  rating,
				Service: ledger.New(p),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
