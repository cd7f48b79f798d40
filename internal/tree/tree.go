// Package tree defines ExprRec, the node shared by the operator tree
// and — after internal/program.Linearize — the flat evaluation program
// (spec.md §3, "ExprRec"), and Build, the recursive precedence-climbing
// tree builder (spec.md §4.4).
//
// Grounded on the teacher's internal/parser precedence-climbing idiom
// (a token-type→precedence map walked by a Pratt-style loop), adapted
// from lexer.Token/ast.Expression to word.Word/ExprRec.
package tree

import "github.com/nburlacu/exprcalc/internal/word"

// ExprRec is a node of both the operator tree and, later, the linear
// program. It implements word.Node so kernels can be written against
// the interface without importing this package.
type ExprRec struct {
	W *word.Word

	// ArgTrees holds child nodes during the tree-building and
	// constant-folding phases. Cleared to nil for every slot once
	// internal/program.Linearize consumes it.
	ArgTrees [word.MaxArg]*ExprRec

	// Args holds resolved input pointers used at evaluation time: each
	// points into a predecessor node's res, a variable's backing cell,
	// or a constant's Value. Populated by Linearize.
	Args [word.MaxArg]*float64

	res  float64     // scratch output cell
	Op   word.Kernel // evaluation kernel, copied from W.Op
	Next *ExprRec    // successor link in the linearized program
}

// NewLeaf builds a childless node directly from a Word (a variable,
// constant, or LogicalStringOper).
func NewLeaf(w *word.Word) *ExprRec {
	return &ExprRec{W: w, Op: w.Op}
}

// NewNode builds a node from an operator/function Word and its already
// parsed argument subtrees.
func NewNode(w *word.Word, args ...*ExprRec) *ExprRec {
	n := &ExprRec{W: w, Op: w.Op}
	for i, a := range args {
		if i >= word.MaxArg {
			break
		}
		n.ArgTrees[i] = a
	}
	return n
}

// --- word.Node ---

func (n *ExprRec) Arg(i int) float64 {
	if n.Args[i] == nil {
		return 0
	}
	return *n.Args[i]
}

func (n *ExprRec) SetRes(v float64) { n.res = v }

func (n *ExprRec) SetArg(i int, v float64) {
	if n.Args[i] != nil {
		*n.Args[i] = v
	}
}
func (n *ExprRec) Res() float64        { return n.res }
func (n *ExprRec) Word() *word.Word    { return n.W }

// ResCell returns the address of the scratch result cell, used by
// internal/program.Linearize to wire a predecessor's output into a
// successor's Args slot.
func (n *ExprRec) ResCell() *float64 { return &n.res }
