package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	evalVars []string
	evalDump bool
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Compile and evaluate a single expression",
	Long: `Compile and evaluate a single expression, printing its result.

Examples:
  exprcalc eval '4*4*x' --var x=3
  exprcalc eval 'if(x>0,x,-x)' --var x=-7
  exprcalc eval --dump '4*4*x' --var x=3`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "bind a numeric variable as name=value (repeatable)")
	evalCmd.Flags().BoolVar(&evalDump, "dump", false, "print the linearized program's node sequence before the result")
}

func runEval(_ *cobra.Command, args []string) error {
	e := newEngine()

	// Cells must outlive evaluation, so they're declared up front rather
	// than inside the loop.
	cells := make([]float64, len(evalVars))
	for i, raw := range evalVars {
		name, v, err := parseVarAssignment(raw)
		if err != nil {
			return err
		}
		cells[i] = v
		if err := e.DefineVariable(name, &cells[i]); err != nil {
			return err
		}
	}

	idx, err := e.AddExpression(args[0])
	if err != nil {
		return err
	}
	if evalDump {
		fmt.Println(e.Dump(idx))
	}

	if _, err := e.EvaluateCurrent(); err != nil {
		return err
	}
	out, err := formatResult(e, idx)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
