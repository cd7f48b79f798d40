package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nburlacu/exprcalc/pkg/exprcalc"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive session that keeps one engine alive across
lines, so a variable changed with 'set' is visible to every expression
already compiled against it without recompiling (no-recompile contract).

Commands:
  set NAME VALUE   bind or update a numeric variable
  dump             show the last compiled expression's node sequence
  exit, quit       leave the session

Anything else is compiled and evaluated as an expression.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	e := newEngine()
	cells := make(map[string]*float64)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(os.Stdout, "> ")
			continue
		}

		switch {
		case line == "exit" || line == "quit":
			return nil
		case line == "dump":
			if idx := e.CurrentIndex(); idx >= 0 {
				fmt.Fprintln(os.Stdout, e.Dump(idx))
			}
		case strings.HasPrefix(line, "set "):
			if err := replSet(e, cells, strings.TrimPrefix(line, "set ")); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		default:
			replEval(e, line)
		}
		fmt.Fprint(os.Stdout, "> ")
	}
	return scanner.Err()
}

func replSet(e *exprcalc.Engine, cells map[string]*float64, rest string) error {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return fmt.Errorf("usage: set NAME VALUE")
	}
	name, raw := fields[0], fields[1]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", raw, err)
	}
	if cell, ok := cells[name]; ok {
		*cell = v
		return nil
	}
	cell := new(float64)
	*cell = v
	cells[name] = cell
	return e.DefineVariable(name, cell)
}

func replEval(e *exprcalc.Engine, line string) {
	idx, err := e.AddExpression(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if _, err := e.EvaluateCurrent(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	out, err := formatResult(e, idx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(os.Stdout, out)
}
