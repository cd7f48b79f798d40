package kernel

import "github.com/nburlacu/exprcalc/internal/word"

// Precedence levels for the built-in operators (spec.md §4.4), lowest
// number binds tightest. Library functions (sin, pow, if, ...) aren't
// looked up by precedence at all: they're always followed by '(' and
// parsed as a call, so their Word.Precedence is left at zero.
const (
	PrecUnaryPostfix = 10 // -@ +@ ! % in
	PrecPower        = 20 // ^ ^@
	PrecMultiplyDiv  = 30 // * / div mod
	PrecAdditive     = 40 // + -
	PrecComparison   = 50 // = <> < <= > >=
	PrecNot          = 60 // not
	PrecLogical      = 70 // and or xor
	PrecAssign       = 200
)

// Builtins returns a fresh set of Words for every built-in operator and
// library function spec.md §4.6 and §4.8 name. The Engine façade seeds a
// new Dictionary from this slice on construction; callers never share
// these Word pointers across dictionaries.
func Builtins() []*word.Word {
	op := func(name string, nArgs, prec int, canVary bool, k word.Kernel) *word.Word {
		return word.NewFunction(name, nArgs, prec, true, canVary, k)
	}
	boolOp := func(name string, nArgs, prec int, k word.Kernel) *word.Word {
		return word.NewBooleanFunction(name, nArgs, prec, true, false, k)
	}
	fn := func(name string, nArgs int, k word.Kernel) *word.Word {
		return word.NewFunction(name, nArgs, 0, false, false, k)
	}
	postfix := func(w *word.Word) *word.Word {
		w.Postfix = true
		return w
	}

	return []*word.Word{
		// Arithmetic operators.
		op("+", 2, PrecAdditive, false, Add),
		op("-", 2, PrecAdditive, false, Sub),
		op("*", 2, PrecMultiplyDiv, false, Mul),
		op("/", 2, PrecMultiplyDiv, false, Div),
		op("^", 2, PrecPower, false, Pow),
		op("^@", 2, PrecPower, false, IntPow),
		op("div", 2, PrecMultiplyDiv, false, IntDiv),
		op("mod", 2, PrecMultiplyDiv, false, Mod),

		// Unary/postfix operators. '-@'/'+@' are never typed directly:
		// the shaper synthesizes them from runs of '+'/'-'. '!' and '%'
		// are lexed literally and marked Postfix so tree.Build parses
		// them after their operand instead of before it.
		op("-@", 1, PrecUnaryPostfix, false, Neg),
		op("+@", 1, PrecUnaryPostfix, false, Pos),
		postfix(op("!", 1, PrecUnaryPostfix, false, Factorial)),
		postfix(op("%", 1, PrecUnaryPostfix, false, Percent)),

		// Numeric comparisons.
		boolOp("=", 2, PrecComparison, Eq),
		boolOp("<>", 2, PrecComparison, Neq),
		boolOp("<", 2, PrecComparison, Lt),
		boolOp("<=", 2, PrecComparison, Lte),
		boolOp(">", 2, PrecComparison, Gt),
		boolOp(">=", 2, PrecComparison, Gte),

		// 'in' is only ever evaluated after the shaper fuses it into a
		// LogicalStringOper; as a plain operator Word it exists solely so
		// the lexer/shaper can recognize the identifier and tree.Build can
		// reject a numeric use of it with a clear error.
		boolOp("in", 2, PrecUnaryPostfix, nil),

		// Logical operators (bitwise over rounded integer operands).
		boolOp("and", 2, PrecLogical, And),
		boolOp("or", 2, PrecLogical, Or),
		boolOp("xor", 2, PrecLogical, Xor),
		boolOp("not", 1, PrecNot, Not),

		// Assignment.
		op(":=", 2, PrecAssign, false, Assign),

		// Math library (always function-call form).
		fn("sin", 1, Sin),
		fn("cos", 1, Cos),
		fn("tan", 1, Tan),
		fn("ln", 1, Ln),
		fn("log10", 1, Log10),
		fn("exp", 1, Exp),
		fn("sqrt", 1, Sqrt),
		fn("abs", 1, Abs),
		fn("round", 1, Round),
		fn("trunc", 1, Trunc),
		fn("min", 2, Min),
		fn("max", 2, Max),
		fn("pow", 2, PowFn),
		randomFn(),
		fn("if", 3, If),
	}
}

// randomFn builds the zero-argument 'random()' function Word with
// CanVary set, so internal/fold never folds a call to it away even
// though it has no variable operands to make CanVary recurse into.
func randomFn() *word.Word {
	return word.NewFunction("random", 0, 0, false, true, Random)
}
