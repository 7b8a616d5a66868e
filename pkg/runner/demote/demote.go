// Package demote provides the runner logic for pushing focus tasks down
// into overflow or the inbox.
package demote

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Demote moves a focus slot's task into overflow, or into the inbox with a
// priority.
type Demote struct {
	On       string
	Label    string
	Inbox    bool
	Priority day.Priority
	Service  *ledger.Service
}

func (n *Demote) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not demote, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	var out day.Outcome
	if n.Inbox {
		out = n.Service.DemoteToInbox(ctx, n.Label, n.Priority)
	} else {
		out = n.Service.DemoteToOverflow(ctx, n.Label)
	}
	if out != day.Moved {
		return errors.New("can not demote: " + out.String())
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
