package kernel

import (
	"math"
	"math/rand"

	"github.com/nburlacu/exprcalc/internal/word"
)

// Sin, Cos, Tan, Exp, Abs, Round and Trunc wrap math's single-argument
// library functions as unary Kernels. Ln, Log10 and Sqrt additionally
// raise a MathError on the inputs math's functions would otherwise
// silently turn into NaN (spec.md §4.6's "domain error" class).

func Sin(n word.Node)   { n.SetRes(math.Sin(n.Arg(0))) }
func Cos(n word.Node)   { n.SetRes(math.Cos(n.Arg(0))) }
func Tan(n word.Node)   { n.SetRes(math.Tan(n.Arg(0))) }
func Exp(n word.Node)   { n.SetRes(math.Exp(n.Arg(0))) }
func Abs(n word.Node)   { n.SetRes(math.Abs(n.Arg(0))) }
func Round(n word.Node) { n.SetRes(math.Round(n.Arg(0))) }
func Trunc(n word.Node) { n.SetRes(math.Trunc(n.Arg(0))) }

func Ln(n word.Node) {
	v := n.Arg(0)
	if v <= 0 {
		raise(n, "ln requires a positive argument")
	}
	n.SetRes(math.Log(v))
}

func Log10(n word.Node) {
	v := n.Arg(0)
	if v <= 0 {
		raise(n, "log10 requires a positive argument")
	}
	n.SetRes(math.Log10(v))
}

func Sqrt(n word.Node) {
	v := n.Arg(0)
	if v < 0 {
		raise(n, "sqrt requires a non-negative argument")
	}
	n.SetRes(math.Sqrt(v))
}

func Min(n word.Node) { n.SetRes(math.Min(n.Arg(0), n.Arg(1))) }
func Max(n word.Node) { n.SetRes(math.Max(n.Arg(0), n.Arg(1))) }

// PowFn implements the 2-argument 'pow(base, exp)' library function,
// distinct from the '^'/'^@' infix operators.
func PowFn(n word.Node) {
	r := math.Pow(n.Arg(0), n.Arg(1))
	if math.IsNaN(r) {
		raise(n, "domain error in pow")
	}
	n.SetRes(r)
}

// Random implements the zero-argument 'random()' function, returning a
// value in [0, 1). It is not seeded deterministically: two compiled
// programs sharing a random() call will diverge across Evaluate calls,
// matching the teacher's library-function "impure" convention rather
// than DWScript's thread-local seed.
func Random(n word.Node) { n.SetRes(rand.Float64()) }
