package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shiftplan",
	Short: "Weekly production shift planner",
	Long: `shiftplan allocates a week of production work across a fixed roster of
operators and a fixed set of machines, then reports per-project/per-machine
completion progress against demand.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
