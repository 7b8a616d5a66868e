// Package mood provides the runner logic for the daily mood rating.
package mood

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/trio/pkg/day"
	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Mood records a 1..5 rating on a day.
type Mood struct {
	On      string
	Rating  int
	Service *ledger.Service
}

func (n *Mood) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log mood, no ledger")
	}
	if n.Rating < day.MinMood || n.Rating > day.MaxMood {
		return fmt.Errorf("mood %d out of range %d..%d", n.Rating, day.MinMood, day.MaxMood)
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}
	n.Service.LogMood(ctx, n.Rating)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
