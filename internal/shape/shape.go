// Package shape implements the shaper (spec.md §4.3, "Check"): the
// in-place token-stream rewrite that resolves +/- and not polymorphism,
// fuses string comparisons, promotes integer powers, and rejects
// ill-formed adjacencies before the tree builder ever sees the tokens.
package shape

import (
	"fmt"

	"github.com/nburlacu/exprcalc/internal/errors"
	"github.com/nburlacu/exprcalc/internal/kernel"
	"github.com/nburlacu/exprcalc/internal/word"
)

// Check runs the full shaping pipeline over tokens and returns the
// rewritten slice, or the first syntax error it encounters.
func Check(tokens []*word.Word, dict *word.Dictionary, pool *word.ConstantPool) ([]*word.Word, error) {
	tokens = collapse(tokens, dict)
	tokens = promoteIntegerPower(tokens, dict)
	if err := checkAdjacency(tokens); err != nil {
		return nil, err
	}
	tokens = fuseStringCompares(tokens, dict, pool)
	return tokens, nil
}

func isPlusMinus(w *word.Word) bool {
	return w.Kind == word.KindFunction && w.IsOperator && (w.Name == "+" || w.Name == "-")
}

func isNot(w *word.Word) bool {
	return w.Name == "not"
}

func isOperatorWord(w *word.Word) bool {
	return (w.Kind == word.KindFunction || w.Kind == word.KindBooleanFunction) && w.IsOperator
}

// signContext reports whether prev (nil at start of input) is a valid
// predecessor for a unary +/- per spec.md §4.3: "nothing, (, ,, or a
// binary operator".
func signContext(prev *word.Word) bool {
	if prev == nil {
		return true
	}
	if prev.Kind == word.KindLeftBracket || prev.Kind == word.KindComma {
		return true
	}
	return isOperatorWord(prev) && prev.Arity() == 2
}

// notContext reports whether prev is a valid predecessor for 'not' per
// spec.md §4.3: "nothing, (, or an operator".
func notContext(prev *word.Word) bool {
	if prev == nil {
		return true
	}
	if prev.Kind == word.KindLeftBracket {
		return true
	}
	return isOperatorWord(prev)
}

// collapse performs sign collapsing and double-not collapsing in a
// single forward pass.
func collapse(tokens []*word.Word, dict *word.Dictionary) []*word.Word {
	out := make([]*word.Word, 0, len(tokens))
	var prev *word.Word

	i := 0
	for i < len(tokens) {
		t := tokens[i]

		if isPlusMinus(t) && signContext(prev) {
			j := i
			negCount := 0
			for j < len(tokens) && isPlusMinus(tokens[j]) {
				if tokens[j].Name == "-" {
					negCount++
				}
				j++
			}
			name := "+@"
			if negCount%2 == 1 {
				name = "-@"
			}
			uw, _ := dict.Search(name)
			out = append(out, uw)
			prev = uw
			i = j
			continue
		}

		if isNot(t) && notContext(prev) {
			j := i
			count := 0
			for j < len(tokens) && isNot(tokens[j]) {
				count++
				j++
			}
			if count%2 == 1 {
				out = append(out, t)
				prev = t
			}
			// even count: all collapse away, prev unchanged.
			i = j
			continue
		}

		out = append(out, t)
		prev = t
		i++
	}
	return out
}

// promoteIntegerPower rewrites '^' to '^@' when its right operand is a
// decimal-separator-free numeric constant (spec.md §4.3).
func promoteIntegerPower(tokens []*word.Word, dict *word.Dictionary) []*word.Word {
	for i, t := range tokens {
		if t.Kind != word.KindFunction || !t.IsOperator || t.Name != "^" {
			continue
		}
		if i+1 >= len(tokens) {
			continue
		}
		next := tokens[i+1]
		if next.Kind != word.KindDoubleConstant {
			continue
		}
		if containsDot(next.Name) {
			continue
		}
		if pw, _ := dict.Search("^@"); pw != nil {
			tokens[i] = pw
		}
	}
	return tokens
}

func containsDot(s string) bool {
	for _, r := range s {
		if r == '.' {
			return true
		}
	}
	return false
}

func isOperand(w *word.Word) bool {
	return w.IsVariable() || w.IsConstant()
}

func isZeroArgCall(w *word.Word) bool {
	return (w.Kind == word.KindFunction || w.Kind == word.KindBooleanFunction) && !w.IsOperator && w.NArgs == 0
}

func displayName(w *word.Word) string {
	switch w.Kind {
	case word.KindLeftBracket:
		return "("
	case word.KindRightBracket:
		return ")"
	default:
		return w.Name
	}
}

// checkAdjacency rejects the ill-formed token adjacencies spec.md §4.3
// lists.
func checkAdjacency(tokens []*word.Word) error {
	for i := 0; i < len(tokens)-1; i++ {
		cur, next := tokens[i], tokens[i+1]

		switch {
		case cur.Kind == word.KindRightBracket && next.Kind == word.KindLeftBracket:
			return errors.NewSyntaxError(next.Pos, errors.CodeMissingOperand,
				fmt.Sprintf("missing operand between %s and %s", displayName(cur), displayName(next)))

		case cur.Kind == word.KindLeftBracket && next.Kind == word.KindRightBracket &&
			!(i > 0 && isZeroArgCall(tokens[i-1])):
			// "()" is only valid as the call brackets of a zero-argument
			// function such as random().
			return errors.NewSyntaxError(cur.Pos, errors.CodeEmptyBrackets, "empty argument list")

		case cur.Kind == word.KindGeneratedVariable && next.Kind == word.KindLeftBracket:
			return errors.NewSyntaxError(cur.Pos, errors.CodeUnknownFunction,
				fmt.Sprintf("unknown function %q", cur.Name))

		case isOperand(cur) && next.Kind == word.KindLeftBracket:
			return errors.NewSyntaxError(cur.Pos, errors.CodeMissingOperand,
				fmt.Sprintf("%q is a variable, not a function", cur.Name))

		case cur.Kind == word.KindRightBracket && isOperand(next):
			return errors.NewSyntaxError(next.Pos, errors.CodeMissingOperand,
				fmt.Sprintf("missing operand between %s and %s", displayName(cur), displayName(next)))

		case isOperand(cur) && isOperand(next):
			return errors.NewSyntaxError(next.Pos, errors.CodeMissingOperand,
				fmt.Sprintf("missing operand between %s and %s", displayName(cur), displayName(next)))
		}
	}
	return nil
}

func isComparisonOperator(w *word.Word) bool {
	if !isOperatorWord(w) {
		return false
	}
	switch w.Name {
	case "=", "<>", "<", "<=", ">", ">=", "in", "==", "!=":
		return true
	default:
		return false
	}
}

// fuseStringCompares replaces every (string, comparisonOp, string)
// triple with a single LogicalStringOper Word, owned by pool.
func fuseStringCompares(tokens []*word.Word, dict *word.Dictionary, pool *word.ConstantPool) []*word.Word {
	out := make([]*word.Word, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		if i+2 < len(tokens) &&
			tokens[i].IsString() && isComparisonOperator(tokens[i+1]) && tokens[i+2].IsString() {
			lhs, op, rhs := tokens[i], tokens[i+1], tokens[i+2]
			fused := pool.Add(word.NewLogicalStringOper(op.Name, lhs, rhs, kernel.StringCompareKernel(op.Name)))
			fused.Pos = lhs.Pos
			out = append(out, fused)
			i += 3
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}
