// Package edit provides the runner logic for focus slot edits: setting
// text, setting a note, and clearing.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Edit mutates one focus slot on one day.
type Edit struct {
	On      string
	Label   string
	Text    *string
	Note    *string
	Clear   bool
	Service *ledger.Service
}

// Do applies the configured edit and prints the resulting day.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	switch {
	case n.Clear:
		if !n.Service.Clear(ctx, n.Label) {
			return errors.New("no such slot: " + n.Label)
		}
	case n.Text != nil:
		if !n.Service.UpdateText(ctx, n.Label, *n.Text) {
			return errors.New("no such slot: " + n.Label)
		}
	case n.Note != nil:
		if !n.Service.UpdateNote(ctx, n.Label, *n.Note) {
			return errors.New("can not note an empty slot")
		}
	default:
		return errors.New("nothing to edit")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
