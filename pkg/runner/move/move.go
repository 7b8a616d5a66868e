// Package move provides the runner logic for rescheduling a focus task
// onto a later day.
package move

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
	"tableflip.dev/trio/pkg/timeutil"
)

// Move relocates a focus slot's task from one day to a strictly later one.
type Move struct {
	From    string
	To      string
	Label   string
	Service *ledger.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no ledger")
	}
	if !timeutil.Before(n.From, n.To) {
		return errors.New("target day must come after the source day")
	}
	if !n.Service.MoveTask(ctx, n.From, n.To, n.Label) {
		return errors.New("nothing to move: slot is empty or already done")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.DayOn(ctx, n.From))
	pp.Day(n.Service.DayOn(ctx, n.To))
	return nil
}
