// Package promote provides the runner logic for lifting overflow or inbox
// tasks into a focus slot.
package promote

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Promote moves a list item into the first empty focus slot.
type Promote struct {
	On      string
	Inbox   bool
	Index   int
	Service *ledger.Service
}

func (n *Promote) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not promote, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	var out day.Outcome
	if n.Inbox {
		out = n.Service.PromoteInbox(ctx, n.Index)
	} else {
		out = n.Service.PromoteOverflow(ctx, n.Index)
	}
	switch out {
	case day.Moved:
	case day.NoSlotFree:
		// Reported distinctly: the caller may clear a slot and retry.
		return errors.New("no free focus slot; clear or demote one first")
	default:
		return errors.New("can not promote: " + out.String())
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
