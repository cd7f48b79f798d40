// Package word defines the compile-time lexeme descriptor shared by the
// lexer, shaper, tree builder and linearizer: a Word.
//
// DWScript's class hierarchy (TExprWord / TFunction / TBooleanFunction /
// TDoubleConstant / TDoubleVariable / TStringVariable / ...) is flattened
// here into a single tagged struct with capability flags, per the
// "Polymorphism via tagged variants" redesign note: a class hierarchy
// used only for dispatch becomes an enum tag plus a function pointer.
package word

// MaxArg is the maximum argument count any Function/BooleanFunction may
// declare.
const MaxArg = 4

// Kind tags the variant a Word represents.
type Kind int

const (
	KindLeftBracket Kind = iota
	KindRightBracket
	KindComma
	KindDoubleConstant
	KindStringConstant
	KindBooleanConstant
	KindDoubleVariable
	KindStringVariable
	KindGeneratedVariable
	KindFunction
	KindBooleanFunction
	KindLogicalStringOper
)

// Kernel is the evaluation function pointer a Function/BooleanFunction
// Word carries. It is invoked with the program node that holds this
// Word, reading operands through n.Arg and writing the result through
// n.SetRes.
//
// The signature intentionally takes the node rather than a slice of
// values: spec.md's evaluator walks a linked list of these nodes and
// calls "one function pointer per node" without any extra allocation.
type Kernel func(n Node)

// Node is the minimal surface a Kernel needs from a program node. The
// concrete type (internal/tree.ExprRec) implements this; Kernel is
// declared against the interface instead of the concrete struct so that
// internal/tree does not need to import internal/kernel (which defines
// most Kernels) and vice versa.
type Node interface {
	// Arg returns the current value at input slot i (0-based), resolved
	// through whatever the slot points to: a predecessor's Res, a
	// variable's cell, or a constant's value.
	Arg(i int) float64
	// SetRes writes this node's scratch result.
	SetRes(v float64)
	// SetArg writes through input slot i, used only by the assignment
	// kernel: ':=' 's left slot is wired directly to a variable's cell
	// (see internal/program's leaf short-circuiting), so writing through
	// it mutates the variable itself.
	SetArg(i int, v float64)
	// Res reads this node's scratch result.
	Res() float64
	// Word returns the Word this node was built from, giving kernels
	// like LogicalStringOper's access to operand Words that aren't
	// threaded through Arg (string operands have no numeric cell).
	Word() *Word
}

// Position is a 1-based line/column location within source text,
// counted in runes (not bytes), matching the teacher's convention so
// that multi-byte UTF-8 never skews error columns.
type Position struct {
	Line   int
	Column int
}

// Word is the atomic compile-time description of a lexeme.
type Word struct {
	Name string // always lowercase
	Kind Kind
	Pos  Position // where this Word's token started in the source text

	// Function / BooleanFunction / operator fields.
	NArgs      int
	Precedence int
	IsOperator bool
	CanVary    bool
	Op         Kernel

	// Postfix marks an arity-1 operator as postfix (e.g. '!', '%')
	// rather than prefix (e.g. '-@', 'not'). Meaningless for any Word
	// that isn't a unary operator.
	Postfix bool

	// DoubleConstant / BooleanConstant.
	Value float64

	// StringConstant.
	Str string

	// DoubleVariable / StringVariable: borrowed pointers into
	// caller-owned storage.
	FloatCell  *float64
	StringCell *string

	// GeneratedVariable: owns its storage (created on first use of an
	// undeclared identifier).
	owned float64

	// LogicalStringOper: the two string operand Words it was fused
	// from, and the comparison operator name ("=", "<>", "in", ...).
	LHS, RHS *Word
}

// NewGeneratedVariable creates a Word that owns its own float64 cell.
func NewGeneratedVariable(name string) *Word {
	w := &Word{Name: name, Kind: KindGeneratedVariable}
	w.FloatCell = &w.owned
	return w
}

// NewDoubleVariable creates a Word borrowing an externally owned cell.
func NewDoubleVariable(name string, cell *float64) *Word {
	return &Word{Name: name, Kind: KindDoubleVariable, FloatCell: cell}
}

// NewStringVariable creates a Word borrowing an externally owned string.
func NewStringVariable(name string, cell *string) *Word {
	return &Word{Name: name, Kind: KindStringVariable, StringCell: cell}
}

// NewDoubleConstant creates an owned numeric constant Word.
func NewDoubleConstant(name string, value float64) *Word {
	return &Word{Name: name, Kind: KindDoubleConstant, Value: value}
}

// NewBooleanConstant creates an owned boolean constant Word (value is
// always 0.0 or 1.0).
func NewBooleanConstant(name string, value float64) *Word {
	return &Word{Name: name, Kind: KindBooleanConstant, Value: value}
}

// NewStringConstant creates an owned string constant Word. name is the
// quoted source form (used for dictionary/cache lookups); value is the
// unquoted text.
func NewStringConstant(name, value string) *Word {
	return &Word{Name: name, Kind: KindStringConstant, Str: value}
}

// NewFunction creates an operator-or-function Word.
func NewFunction(name string, nArgs, precedence int, isOperator, canVary bool, op Kernel) *Word {
	return &Word{
		Name:       name,
		Kind:       KindFunction,
		NArgs:      nArgs,
		Precedence: precedence,
		IsOperator: isOperator,
		CanVary:    canVary,
		Op:         op,
	}
}

// NewBooleanFunction creates a boolean-result operator-or-function Word.
func NewBooleanFunction(name string, nArgs, precedence int, isOperator, canVary bool, op Kernel) *Word {
	return &Word{
		Name:       name,
		Kind:       KindBooleanFunction,
		NArgs:      nArgs,
		Precedence: precedence,
		IsOperator: isOperator,
		CanVary:    canVary,
		Op:         op,
	}
}

// NewLogicalStringOper creates the fused string-comparison Word produced
// by the shaper (spec.md §4.3's reverse-pass fusion).
func NewLogicalStringOper(operName string, lhs, rhs *Word, op Kernel) *Word {
	return &Word{
		Name:       operName,
		Kind:       KindLogicalStringOper,
		NArgs:      2,
		Precedence: lhs.Precedence,
		IsOperator: true,
		Op:         op,
		LHS:        lhs,
		RHS:        rhs,
	}
}

// IsVariable reports whether the Word is any of the three variable
// variants.
func (w *Word) IsVariable() bool {
	switch w.Kind {
	case KindDoubleVariable, KindStringVariable, KindGeneratedVariable:
		return true
	default:
		return false
	}
}

// IsConstant reports whether the Word is any of the three constant
// variants.
func (w *Word) IsConstant() bool {
	switch w.Kind {
	case KindDoubleConstant, KindStringConstant, KindBooleanConstant:
		return true
	default:
		return false
	}
}

// IsString reports whether the Word is string-typed (string constant or
// string variable) — used by the shaper's string-compare fusion pass.
func (w *Word) IsString() bool {
	return w.Kind == KindStringConstant || w.Kind == KindStringVariable
}

// IsBoolean reports whether the Word's result should be interpreted as
// boolean — used by result formatting and Fold's boolean-tag detection.
func (w *Word) IsBoolean() bool {
	return w.Kind == KindBooleanFunction || w.Kind == KindBooleanConstant || w.Kind == KindLogicalStringOper
}

// Arity returns the number of operand slots this Word consumes. Pure
// syntax (brackets, comma), variables and constants have arity 0.
func (w *Word) Arity() int {
	switch w.Kind {
	case KindFunction, KindBooleanFunction, KindLogicalStringOper:
		return w.NArgs
	default:
		return 0
	}
}
