package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sxegroup/jitson/jitson"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted member/index path",
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
			fmt.Println(v.ToJSON(ref))
			return nil
		},
	}
}
