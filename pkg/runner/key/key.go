// Package key provides CLI helpers to display the ledger legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/trio/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultGlyphs(), false)
	k.Key(ctx, glyph.DefaultGlyphs(), true)

	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, pri bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		if pri == v.Priority {
			tbl.AddRow(v.Key, v.Symbol, v.Meaning)
		}
	}

	if pri {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nInbox priorities")))
	} else {
		_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nBullets")))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
