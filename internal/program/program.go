// Package program implements the linearizer and evaluator (spec.md §4.4
// and §4.6's "pseudo-compiled program"): Linearize flattens an operator
// tree, post-fold, into a singly linked list of ExprRec nodes wired
// through raw pointers instead of child references, and Evaluate walks
// that list calling one Kernel per node.
package program

import (
	"github.com/nburlacu/exprcalc/internal/errors"
	"github.com/nburlacu/exprcalc/internal/tree"
	"github.com/nburlacu/exprcalc/internal/word"
)

// Linearize converts root into a linked program: a post-order flattening
// where each node's Args slots point directly at a predecessor's result
// cell, a variable's backing cell, or a constant's value — never back
// into the tree. Pure variable and constant leaves are not given a
// program node of their own (spec.md §4.4's "short-circuiting pure
// leaves"): their cell address is wired straight into the consuming
// node's Args slot.
//
// The returned head is nil when root is nil, or when root itself is a
// bare variable or constant leaf (the whole expression reduced to a
// single value with no operator to evaluate) — spec.md §3's "head is
// null when the entire tree folded to a single variable". Callers must
// handle that case by reading root's Word directly instead of walking a
// program.
//
// Linearize fails if a bare string operand reaches a numeric input
// slot: the shaper only fuses (string, comparisonOp, string) triples
// into a LogicalStringOper, so a lone string surviving to here means
// one side of a comparison wasn't string-typed.
func Linearize(root *tree.ExprRec) (*tree.ExprRec, error) {
	if root == nil {
		return nil, nil
	}

	var head, tail *tree.ExprRec
	link := func(n *tree.ExprRec) {
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	var firstErr error
	var visit func(n *tree.ExprRec) *float64
	visit = func(n *tree.ExprRec) *float64 {
		w := n.Word()
		switch w.Kind {
		case word.KindDoubleVariable, word.KindGeneratedVariable:
			return w.FloatCell
		case word.KindDoubleConstant, word.KindBooleanConstant:
			return &w.Value
		case word.KindStringConstant, word.KindStringVariable:
			if firstErr == nil {
				firstErr = errors.NewSyntaxError(w.Pos, errors.CodeMissingOperand,
					"string value used where a number was expected")
			}
			var zero float64
			return &zero
		}

		if w.Kind != word.KindLogicalStringOper {
			arity := w.Arity()
			for i := 0; i < arity; i++ {
				n.Args[i] = visit(n.ArgTrees[i])
				n.ArgTrees[i] = nil
			}
		}
		n.Op = w.Op
		link(n)
		return n.ResCell()
	}

	_ = visit(root)
	if firstErr != nil {
		return nil, firstErr
	}
	return head, nil
}

// Evaluate runs a linearized program from head to its tail and returns
// the last node's result. A *errors.MathError panicked by a kernel
// (division by zero, a math-library domain error) is recovered and
// returned as a normal error.
func Evaluate(head *tree.ExprRec) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if me, ok := r.(*errors.MathError); ok {
				err = me
				return
			}
			panic(r)
		}
	}()

	var last *tree.ExprRec
	for n := head; n != nil; n = n.Next {
		n.Op(n)
		last = n
	}
	if last == nil {
		return 0, nil
	}
	return last.Res(), nil
}
