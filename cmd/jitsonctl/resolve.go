package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sxegroup/jitson/jitson"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file> <path>",
		Short: "Print the value at a path and the resolved type behind it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			v, err := jitson.Parse(data)
			if err != nil {
				return err
			}
			ref, ok := navigate(v, args[1])
			if !ok {
				return fmt.Errorf("no value at path %q", args[1])
			}
			fmt.Fprintf(os.Stderr, "resolved type: %s\n", v.Registry().Name(v.ResolvedType(ref)))
			fmt.Println(v.ToJSON(ref))
			return nil
		},
	}
}
