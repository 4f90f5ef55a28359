package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sxegroup/jitson/jitson"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a document and print it back as canonical JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			v, err := jitson.Parse(data)
			if err != nil {
				return err
			}
			fmt.Println(v.ToJSON(v.Root()))
			return nil
		},
	}
}
