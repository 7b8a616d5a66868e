// Package show provides the runner logic for printing a day's ledger.
package show

import (
	"context"
	"errors"

	"tableflip.dev/trio/pkg/ledger"
	"tableflip.dev/trio/pkg/printers"
)

// Show prints the snapshot for one day.
type Show struct {
	On        string
	ShowIndex bool
	Service   *ledger.Service
}

// Do prints the configured day, materializing it (with carry-over) when it
// does not exist yet.
func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no ledger")
	}
	if err := n.Service.Select(n.On); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: n.ShowIndex}
	pp.NewLine()
	pp.Day(n.Service.Day(ctx))
	return nil
}
