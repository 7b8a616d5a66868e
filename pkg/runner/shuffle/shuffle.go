// Package shuffle provides the runner logic for transfers between the two
// unbounded compartments, overflow and inbox.
package shuffle

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Shuffle moves an item overflow->inbox or inbox->overflow.
type Shuffle struct {
	On         string
	ToOverflow bool
	Index      int
	Priority   day.Priority
	Service    *ledger.Service
}

func (n *Shuffle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not shuffle, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	var out day.Outcome
	if n.ToOverflow {
		out = n.Service.MoveInboxToOverflow(ctx, n.Index)
	} else {
		out = n.Service.MoveOverflowToInbox(ctx, n.Index, n.Priority)
	}
	if out != day.Moved {
		return errors.New("can not shuffle: " + out.String())
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
