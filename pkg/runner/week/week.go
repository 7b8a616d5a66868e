// Package week provides the runner logic for the weekly report.
package week

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Week prints completion counts and average mood for the week containing
// the given day.
type Week struct {
	On      string
	Service *ledger.Service
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Week(n.Service.Week(ctx))
	return nil
}
