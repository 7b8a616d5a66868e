package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trio",
		Short: base.Wrap80("Three focus tasks a day, an overflow list, and an inbox."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addNote(topLevel)
	addCheck(topLevel)
	addClear(topLevel)
	addAdd(topLevel)
	addPromote(topLevel)
	addDemote(topLevel)
	addShuffle(topLevel)
	addMove(topLevel)
	addMood(topLevel)
	addCollapse(topLevel)
	addWeek(topLevel)
	addKey(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
