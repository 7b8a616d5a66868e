package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/day"
)

// PriorityOptions tags an inbox item.
type PriorityOptions struct {
	Priority string
}

func AddPriorityArgs(cmd *cobra.Command, o *PriorityOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", string(day.Medium),
		"Inbox priority: must, medium, or nice.")
}

// Get maps the flag onto a priority; unknown values fall back to medium.
func (o *PriorityOptions) Get() day.Priority {
	return day.ParsePriority(o.Priority)
}
