package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jitsonctl",
		Short:         "Inspect and query jitson-encoded documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newIntersectCmd())
	return root
}
