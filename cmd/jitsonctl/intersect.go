package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sxegroup/jitson/jitson"
	"github.com/sxegroup/jitson/jitson/oper"
)

func newIntersectCmd() *cobra.Command {
	var testOnly bool
	cmd := &cobra.Command{
		Use:   "intersect <fileA> <pathA> <fileB> <pathB>",
		Short: "Intersect two sorted arrays drawn from two documents",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reading and parsing the two documents are independent; run
			// them concurrently and fail fast on whichever errors first.
			var va, vb *jitson.Value
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				v, err := jitson.ParseWithOptions(data, jitson.Options{Flags: jitson.Optimize})
				if err != nil {
					return err
				}
				va = v
				return ctx.Err()
			})
			g.Go(func() error {
				data, err := os.ReadFile(args[2])
				if err != nil {
					return err
				}
				v, err := jitson.ParseWithOptions(data, jitson.Options{Flags: jitson.Optimize})
				if err != nil {
					return err
				}
				vb = v
				return ctx.Err()
			})
			if err := g.Wait(); err != nil {
				return err
			}

			refA, ok := navigate(va, args[1])
			if !ok {
				return fmt.Errorf("no value at path %q in %s", args[1], args[0])
			}
			refB, ok := navigate(vb, args[3])
			if !ok {
				return fmt.Errorf("no value at path %q in %s", args[3], args[2])
			}

			// INTERSECT operates within a single Value's cell space;
			// splice both operands into one merged Stack first.
			merge := jitson.NewStack(nil)
			mergedA := merge.CloneFrom(va, refA)
			mergedB := merge.CloneFrom(vb, refB)
			merged, err := merge.Seal()
			if err != nil {
				return err
			}

			if testOnly {
				found, err := oper.IntersectTest(merged, mergedA, mergedB)
				if err != nil {
					return err
				}
				fmt.Println(found)
				return nil
			}

			out := jitson.NewStack(nil)
			resultRef, err := oper.Intersect(out, merged, mergedA, mergedB)
			if err != nil {
				return err
			}
			result, err := out.Seal()
			if err != nil {
				return err
			}
			fmt.Println(result.ToJSON(resultRef))
			return nil
		},
	}
	cmd.Flags().BoolVar(&testOnly, "test", false, "only report whether the arrays share an element")
	return cmd
}
