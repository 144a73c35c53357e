// Command wmccore is a thin demonstration CLI over the cnf package: it
// parses a CNF dialect and either prints the formula's statistics or
// computes and prints a variable elimination ordering. Solving,
// tree-decomposition construction, and the downstream counting engine
// are out of scope; this binary only exercises the front-end core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
