// Package kernel holds the evaluation function pointers (spec.md §4.6,
// "Kernel") every built-in Word carries in its Op field: one function
// per arithmetic, logical, comparison, control, and math-library
// operator. Each Kernel reads its operands through word.Node.Arg and
// writes its result through word.Node.SetRes — the same shape whether
// the node is still a tree node or has been linearized into a program.
//
// Grounded on the teacher's internal/builtins function-table idiom (a
// name-keyed map of small, independently testable Go functions), but
// rebound to DWScript's TExprWord.Op kernel-per-node dispatch instead
// of the teacher's AST-visitor evaluation.
package kernel

import (
	"math"

	"github.com/nburlacu/exprcalc/internal/errors"
	"github.com/nburlacu/exprcalc/internal/word"
)

// raise aborts evaluation with a MathError. Kernels panic rather than
// return an error because word.Kernel's signature (func(Node)) has no
// error channel: internal/program.Evaluate and internal/fold.Fold both
// run their node-walk under a recover that turns a *errors.MathError
// panic back into a normal error return, matching spec.md §4.6's "On
// divide-by-zero or domain error, unwind with a MathError".
func raise(n word.Node, msg string) {
	panic(errors.NewMathError(n.Word().Pos, msg))
}

// Add implements '+'.
func Add(n word.Node) { n.SetRes(n.Arg(0) + n.Arg(1)) }

// Sub implements '-'.
func Sub(n word.Node) { n.SetRes(n.Arg(0) - n.Arg(1)) }

// Mul implements '*'.
func Mul(n word.Node) { n.SetRes(n.Arg(0) * n.Arg(1)) }

// Div implements '/'.
func Div(n word.Node) {
	b := n.Arg(1)
	if b == 0 {
		raise(n, "division by zero")
	}
	n.SetRes(n.Arg(0) / b)
}

// IntDiv implements the 'div' integer-division function: both operands
// are rounded to the nearest integer before dividing.
func IntDiv(n word.Node) {
	a, b := math.Round(n.Arg(0)), math.Round(n.Arg(1))
	if b == 0 {
		raise(n, "division by zero")
	}
	n.SetRes(math.Trunc(a / b))
}

// Mod implements the 'mod' function: both operands are rounded to the
// nearest integer before taking the remainder.
func Mod(n word.Node) {
	a, b := math.Round(n.Arg(0)), math.Round(n.Arg(1))
	if b == 0 {
		raise(n, "division by zero")
	}
	n.SetRes(math.Mod(a, b))
}

// Pow implements '^' (real exponent).
func Pow(n word.Node) {
	base, exp := n.Arg(0), n.Arg(1)
	r := math.Pow(base, exp)
	if math.IsNaN(r) {
		raise(n, "domain error in '^'")
	}
	n.SetRes(r)
}

// IntPow implements '^@', the integer-exponent promotion of '^' (spec.md
// §4.3): repeated squaring keeps the result exact for integer exponents
// where math.Pow would otherwise round.
func IntPow(n word.Node) {
	base := n.Arg(0)
	exp := int(math.Round(n.Arg(1)))
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := 1.0
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result *= b
		}
		b *= b
		exp >>= 1
	}
	if neg {
		if result == 0 {
			raise(n, "division by zero")
		}
		result = 1 / result
	}
	n.SetRes(result)
}

// Neg implements unary '-@'.
func Neg(n word.Node) { n.SetRes(-n.Arg(0)) }

// Pos implements unary '+@' (a no-op kept for Dump/round-trip fidelity).
func Pos(n word.Node) { n.SetRes(n.Arg(0)) }

// Factorial implements postfix '!' with the recursive base case
// spec.md §4.7 specifies: x <= 1.1 -> 1, tolerating float noise from
// upstream arithmetic without a separate rounding step.
func Factorial(n word.Node) { n.SetRes(factorial(n.Arg(0))) }

func factorial(x float64) float64 {
	if x <= 1.1 {
		return 1
	}
	return x * factorial(x-1)
}

// Percent implements postfix '%': divides the operand by 100.
func Percent(n word.Node) { n.SetRes(n.Arg(0) / 100) }
