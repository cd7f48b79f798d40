package kernel

import "github.com/nburlacu/exprcalc/internal/word"

// If implements the 3-argument 'if(cond, thenVal, elseVal)' function.
// All three arguments are evaluated unconditionally before If runs —
// spec.md §4.6 deliberately makes this non-short-circuiting, since the
// linearized program has already evaluated every predecessor node by
// the time this one runs.
func If(n word.Node) {
	if n.Arg(0) != 0 {
		n.SetRes(n.Arg(1))
	} else {
		n.SetRes(n.Arg(2))
	}
}

// Assign implements ':='. Its left operand must be a variable leaf; the
// linearizer wires that leaf's cell directly into Args[0] (see
// internal/program's short-circuiting of variable leaves), so SetArg(0, ...)
// mutates the variable in place. The result of the expression is the
// assigned value, so "y:=x*2; y+1" can chain.
func Assign(n word.Node) {
	v := n.Arg(1)
	n.SetArg(0, v)
	n.SetRes(v)
}
