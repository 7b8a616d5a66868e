package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/trio/pkg/timeutil"
)

const layoutShort = "1/2"

// OnOptions selects which calendar day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-05-01" or --on="5/1".`)
}

// GetDay resolves the flag to an ISO day, defaulting to today. A short
// month/day form resolves within the current year, rolling forward when the
// date already passed.
func (o *OnOptions) GetDay() (string, error) {
	if o.OnString == "" {
		return timeutil.Today(), nil
	}
	if t, err := timeutil.ParseDay(o.OnString); err == nil {
		return timeutil.FormatDay(t), nil
	}
	t, err := time.ParseInLocation(layoutShort, o.OnString, time.Local)
	if err != nil {
		return "", err
	}
	t = t.AddDate(time.Now().Year(), 0, 0)
	// Saying 1/3 on 12/5 means next year, not eleven months ago.
	if t.Before(time.Now()) {
		t = t.AddDate(1, 0, 0)
	}
	return timeutil.FormatDay(t), nil
}
