// Command exprcalc is a small CLI over the exprcalc compiled-expression
// engine: evaluate one expression from the command line, or drive a
// live engine instance from a REPL.
package main

import (
	"fmt"
	"os"

	"github.com/nburlacu/exprcalc/cmd/exprcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
