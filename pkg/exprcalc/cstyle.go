package exprcalc

import (
	"github.com/nburlacu/exprcalc/internal/kernel"
	"github.com/nburlacu/exprcalc/internal/word"
)

// WithCStyle swaps the native spellings of the assignment, comparison,
// logical, and unary-postfix operators for their C-family equivalents:
// after this option runs, the removed native spellings no longer parse
// at all, matching the CStyleParser dictionary mutation spec.md's
// registry section describes.
//
//	!   (postfix factorial)  -> fact(x)  function
//	%   (postfix percent)    -> perc(x)  function
//	mod (infix modulo)       -> %        infix operator
//	div (infix integer div)  -> div(a,b) function
//	and (infix logical)      -> &&       infix operator
//	or  (infix logical)      -> ||       infix operator
//	not (prefix logical not) -> !        prefix operator
//	:=  (assignment)         -> =        infix operator
//	=   (equality)           -> ==       infix operator
//	<>  (inequality)         -> !=       infix operator
//
// '&&' binds to kernel.And and '||' to kernel.Or, matching what every
// C-family language means by them. 'not not x' double-negation
// collapsing (internal/shape) only recognizes the native 'not'
// spelling, so it does not fire on chained '!!x' here; two prefix '!'
// nodes still evaluate correctly, just without that fold.
func WithCStyle() Option {
	return func(e *Engine) {
		// '='->'==' must run before ':='->'=' so the two never collide
		// on the name '='.
		swapWord(e.dict, "=", word.NewBooleanFunction("==", 2, kernel.PrecComparison, true, false, kernel.Eq))
		swapWord(e.dict, ":=", word.NewFunction("=", 2, kernel.PrecAssign, true, false, kernel.Assign))

		// '!'->'fact' must run before 'not'->'!' so the two never
		// collide on the name '!'.
		swapWord(e.dict, "!", word.NewFunction("fact", 1, 0, false, false, kernel.Factorial))
		swapWord(e.dict, "not", word.NewBooleanFunction("!", 1, kernel.PrecNot, true, false, kernel.Not))

		// '%'->'perc' must run before 'mod'->'%' so the two never
		// collide on the name '%'.
		swapWord(e.dict, "%", word.NewFunction("perc", 1, 0, false, false, kernel.Percent))
		swapWord(e.dict, "mod", word.NewFunction("%", 2, kernel.PrecMultiplyDiv, true, false, kernel.Mod))

		swapWord(e.dict, "div", word.NewFunction("div", 2, 0, false, false, kernel.IntDiv))
		swapWord(e.dict, "and", word.NewBooleanFunction("&&", 2, kernel.PrecLogical, true, false, kernel.And))
		swapWord(e.dict, "or", word.NewBooleanFunction("||", 2, kernel.PrecLogical, true, false, kernel.Or))
		swapWord(e.dict, "<>", word.NewBooleanFunction("!=", 2, kernel.PrecComparison, true, false, kernel.Neq))
	}
}

// swapWord removes the dictionary entry named old, if present, and adds
// replacement in its place.
func swapWord(dict *word.Dictionary, old string, replacement *word.Word) {
	if _, idx := dict.Search(old); idx >= 0 {
		dict.AtFree(idx)
	}
	dict.Add(replacement)
}
