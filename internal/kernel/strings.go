package kernel

import (
	"strings"

	"github.com/nburlacu/exprcalc/internal/word"
)

// stringValue reads the current text of a string-typed Word: the
// literal for a StringConstant, or the live cell for a StringVariable.
// Comparisons are case-insensitive: lexer.New lowercases all source
// text before tokenizing, so literals already arrive lowercased, and a
// string variable's cell is lowercased here as it is read.
func stringValue(w *word.Word) string {
	switch w.Kind {
	case word.KindStringConstant:
		return w.Str
	case word.KindStringVariable:
		if w.StringCell != nil {
			return strings.ToLower(*w.StringCell)
		}
	}
	return ""
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// StringCompareKernel returns the Kernel for a fused LogicalStringOper
// Word (spec.md §4.3's string-compare fusion). op is one of the
// comparison operator names the shaper recognizes: "=", "<>", "<",
// "<=", ">", ">=", "in".
func StringCompareKernel(op string) word.Kernel {
	return func(n word.Node) {
		w := n.Word()
		lhs := stringValue(w.LHS)
		rhs := stringValue(w.RHS)

		var result bool
		switch op {
		case "=", "==":
			result = lhs == rhs
		case "<>", "!=":
			result = lhs != rhs
		case "<":
			result = lhs < rhs
		case "<=":
			result = lhs <= rhs
		case ">":
			result = lhs > rhs
		case ">=":
			result = lhs >= rhs
		case "in":
			result = stringIn(lhs, rhs)
		}
		n.SetRes(boolToFloat(result))
	}
}

// stringIn implements 'x in y' as exact membership of x in y's
// comma-separated list, e.g. "a in 'dasad,sdsd,a,sds'" is true.
func stringIn(needle, haystack string) bool {
	for _, item := range strings.Split(haystack, ",") {
		if item == needle {
			return true
		}
	}
	return false
}
