package options

import (
	"github.com/spf13/cobra"
)

// IndexOptions addresses one overflow or inbox item by list position.
type IndexOptions struct {
	Index     int
	ShowIndex bool
}

func AddIndexArgs(cmd *cobra.Command, o *IndexOptions) {
	cmd.Flags().IntVarP(&o.Index, "index", "i", 0,
		"Specify the item's list position, as printed by today --index.")
}

func AddShowIndexArgs(cmd *cobra.Command, o *IndexOptions) {
	cmd.Flags().BoolVar(&o.ShowIndex, "index", false,
		"Show list positions next to overflow and inbox items.")
}
