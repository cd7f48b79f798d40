package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	hexChar string
	argSep  string
	cStyle  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "exprcalc",
	Short: "Compiled arithmetic/logical expression evaluator",
	Long: `exprcalc compiles arithmetic and logical expressions with variables,
built-in functions, and assignment into a linearized evaluation program,
constant-folding every subtree whose value cannot vary between runs.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hexChar, "hex-char", "$", "prefix character for hex literals")
	rootCmd.PersistentFlags().StringVar(&argSep, "arg-sep", ",", "function-argument separator character")
	rootCmd.PersistentFlags().BoolVar(&cStyle, "cstyle", false, "swap native operator spellings for their C-family equivalents (&&, ||, ==, !=, fact(), perc(), ...)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
