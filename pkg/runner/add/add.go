// Package add provides the runner logic for capturing new tasks.
package add

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Add records a new overflow or inbox task.
type Add struct {
	On       string
	Inbox    bool
	Priority day.Priority
	Text     string
	Service  *ledger.Service
}

// Do inserts the task and prints the resulting day.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	var out day.Outcome
	if n.Inbox {
		out = n.Service.AddInbox(ctx, n.Text, n.Priority)
	} else {
		out = n.Service.AddOverflow(ctx, n.Text)
	}
	if out != day.Moved {
		return errors.New("can not add: " + out.String())
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
