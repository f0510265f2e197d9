package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "timesheet",
		Short:        "Monthly timesheet form for taxi drivers",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRenderCmd())
	return root
}
