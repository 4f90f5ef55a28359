// Command jitsonctl parses, queries and intersects jitson documents
// from the shell.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jitsonctl:", err)
		os.Exit(1)
	}
}
