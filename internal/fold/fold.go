// Package fold implements the constant folder (spec.md §4.5, "Fold"):
// a post-order tree walk that replaces every subtree whose value cannot
// vary between evaluations with a single constant leaf, before the tree
// is linearized into a program.
package fold

import (
	"github.com/nburlacu/exprcalc/internal/errors"
	"github.com/nburlacu/exprcalc/internal/tree"
	"github.com/nburlacu/exprcalc/internal/word"
)

// CanVary reports whether evaluating n could produce a different result
// on a later call: true if n (or any descendant) is a variable, or is
// tagged CanVary (currently only random()).
func CanVary(n *tree.ExprRec) bool {
	if n == nil {
		return false
	}
	w := n.Word()
	if w.IsVariable() || w.CanVary {
		return true
	}
	if w.Kind == word.KindLogicalStringOper {
		return w.LHS.IsVariable() || w.RHS.IsVariable()
	}
	for i := 0; i < w.Arity(); i++ {
		if CanVary(n.ArgTrees[i]) {
			return true
		}
	}
	return false
}

// Fold walks root post-order and collapses every subtree for which
// CanVary is false into a single constant leaf holding its evaluated
// value, so that at evaluation time the linearized program never
// recomputes work whose inputs never change (spec.md §8's "4*4*x"
// and "ln(5)+3*x" scenarios). Every constant it creates is added to
// pool, the same ownership list that owns parsed literals.
func Fold(root *tree.ExprRec, pool *word.ConstantPool) (*tree.ExprRec, error) {
	if root == nil {
		return nil, nil
	}
	w := root.Word()
	arity := w.Arity()

	if w.Kind != word.KindLogicalStringOper {
		for i := 0; i < arity; i++ {
			folded, err := Fold(root.ArgTrees[i], pool)
			if err != nil {
				return nil, err
			}
			root.ArgTrees[i] = folded
		}
	}

	isCallable := w.Kind == word.KindFunction || w.Kind == word.KindBooleanFunction
	if CanVary(root) || !isCallable {
		// Leaves (variables, constants, LogicalStringOper) are already
		// minimal; nothing to fold.
		return root, nil
	}

	value, err := evalConst(root)
	if err != nil {
		return nil, err
	}

	var leaf *word.Word
	if w.IsBoolean() {
		leaf = word.NewBooleanConstant(w.Name, value)
	} else {
		leaf = word.NewDoubleConstant(w.Name, value)
	}
	leaf.Pos = w.Pos
	pool.Add(leaf)
	return tree.NewLeaf(leaf), nil
}

// evalConst evaluates a side-effect-free subtree directly over the tree
// shape (no linearization needed: folding only ever runs on small,
// already-proven-invariant subtrees). A *errors.MathError panicked by a
// kernel is recovered and returned as a normal error, matching spec.md
// §4.6's "MathError... aborts compilation" for folding.
func evalConst(n *tree.ExprRec) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if me, ok := r.(*errors.MathError); ok {
				err = me
				return
			}
			panic(r)
		}
	}()
	return evalTree(n), nil
}

func evalTree(n *tree.ExprRec) float64 {
	w := n.Word()
	switch w.Kind {
	case word.KindDoubleConstant, word.KindBooleanConstant:
		return w.Value
	case word.KindLogicalStringOper:
		n.Op(n)
		return n.Res()
	}

	arity := w.Arity()
	for i := 0; i < arity; i++ {
		v := evalTree(n.ArgTrees[i])
		n.Args[i] = &v
	}
	n.Op(n)
	return n.Res()
}
