package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/commands/options"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/store"
)

func addCollapse(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	open := false

	cmd := &cobra.Command{
		Use:       "collapse [overflow|inbox]",
		Short:     "Collapse or reopen a day's overflow or inbox pane",
		ValidArgs: []string{"overflow", "inbox"},
		Example: `
trio collapse overflow
trio collapse inbox --open
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 || (args[0] != "overflow" && args[0] != "inbox") {
				return errors.New("requires one of: overflow, inbox")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetDay()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			svc := ledger.New(p)
			if err := svc.Select(on); err != nil {
				return err
			}
			ctx := context.Background()
			if args[0] == "overflow" {
				svc.SetOverflowCollapsed(ctx, !open)
			} else {
				svc.SetInboxCollapsed(ctx, !open)
			}
			return nil
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&open, "open", false, "Reopen the pane instead of collapsing it.")

	topLevel.AddCommand(cmd)
}
