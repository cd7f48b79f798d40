package kernel

import "github.com/nburlacu/exprcalc/internal/word"

// epsilon is the tolerance spec.md §4.7 applies to numeric equality and
// the ordering comparisons' boundary, absorbing float64 rounding noise
// from chained arithmetic. '>=' and '<=' bias only one side of the
// comparison rather than using a symmetric nearly-equal test: that
// asymmetry is intentional, preserved as specified rather than
// "fixed" into something more textbook-correct.
const epsilon = 1e-30

// Eq implements numeric '='.
func Eq(n word.Node) {
	d := n.Arg(0) - n.Arg(1)
	if d < 0 {
		d = -d
	}
	n.SetRes(boolToFloat(d < epsilon))
}

// Neq implements numeric '<>'.
func Neq(n word.Node) {
	d := n.Arg(0) - n.Arg(1)
	if d < 0 {
		d = -d
	}
	n.SetRes(boolToFloat(d >= epsilon))
}

// Lt implements numeric '<'.
func Lt(n word.Node) { n.SetRes(boolToFloat(n.Arg(0) < n.Arg(1))) }

// Gt implements numeric '>'.
func Gt(n word.Node) { n.SetRes(boolToFloat(n.Arg(0) > n.Arg(1))) }

// Lte implements numeric '<=', biased by epsilon on the right-hand side.
func Lte(n word.Node) { n.SetRes(boolToFloat(n.Arg(0) <= n.Arg(1)+epsilon)) }

// Gte implements numeric '>=', biased by epsilon on the right-hand side.
func Gte(n word.Node) { n.SetRes(boolToFloat(n.Arg(0) >= n.Arg(1)-epsilon)) }
