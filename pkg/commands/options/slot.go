// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/day"
)

// SlotOptions picks one of the three focus slots, by number or label.
type SlotOptions struct {
	Slot string
}

func AddSlotArgs(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().StringVarP(&o.Slot, "slot", "s", "1",
		`Specify the focus slot: 1..3 or its label, example: --slot=2.`)
}

// Label resolves the flag to a canonical slot label.
func (o *SlotOptions) Label() (string, error) {
	arg := strings.TrimSpace(o.Slot)
	labels := day.Labels()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > day.FocusSlots {
			return "", fmt.Errorf("slot %d out of range 1..%d", n, day.FocusSlots)
		}
		return labels[n-1], nil
	}
	for _, label := range labels {
		if strings.EqualFold(label, arg) {
			return label, nil
		}
	}
	return "", fmt.Errorf("unknown slot %q", o.Slot)
}
