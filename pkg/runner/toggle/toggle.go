// Package toggle provides the runner logic for flipping done states.
package toggle

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Toggle flips the done state of a focus slot or a list item.
type Toggle struct {
	On      string
	Label   string // focus slot, when set
	Inbox   bool   // toggle an inbox item instead of overflow
	Index   int    // list position when Label is empty
	Service *ledger.Service
}

// Do flips the configured item and prints the resulting day.
func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	switch {
	case n.Label != "":
		if !n.Service.Toggle(ctx, n.Label) {
			return errors.New("can not toggle an empty slot")
		}
	case n.Inbox:
		if out := n.Service.ToggleInbox(ctx, n.Index); out != day.Moved {
			return errors.New("inbox item: " + out.String())
		}
	default:
		if out := n.Service.ToggleOverflow(ctx, n.Index); out != day.Moved {
			return errors.New("overflow item: " + out.String())
		}
	}

	pp := printers.PrettyPrint{ShowIndex: n.Label == ""}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
