package errors

import (
	"strconv"

	"github.com/nburlacu/exprcalc/internal/word"
)

// Error codes, mirroring the teacher's internal/parser/error.go
// Err*-constant convention.
const (
	CodeUnterminatedString = "E_UNTERMINATED_STRING"
	CodeUnknownFunction    = "E_UNKNOWN_FUNCTION"
	CodeEmptyBrackets      = "E_EMPTY_BRACKETS"
	CodeUnbalancedBrackets = "E_UNBALANCED_BRACKETS"
	CodeMissingOperand     = "E_MISSING_OPERAND"
	CodeTooFewArgs         = "E_TOO_FEW_ARGS"
	CodeInvalidNumeric     = "E_INVALID_NUMERIC"
	CodeArityMismatch      = "E_ARITY_MISMATCH"
	CodeMath               = "E_MATH"
	CodeNotBoolean         = "E_NOT_BOOLEAN"
)

// Kind identifies which of spec.md §7's four error classes an error
// belongs to, for callers that want to branch on error category rather
// than string-match a message.
type Kind string

const (
	KindSyntax Kind = "syntax"
	KindArity  Kind = "arity"
	KindMath   Kind = "math"
	KindEval   Kind = "eval"
)

// SyntaxError covers every ill-formed-input case spec.md §7 lists:
// unterminated strings, unknown identifier followed by '(', empty '()',
// adjacent variables, missing operators, unbalanced brackets, and "too
// few arguments".
type SyntaxError struct {
	*CompilerError
	Code string
}

func (e *SyntaxError) Kind() Kind { return KindSyntax }

// NewSyntaxError builds a SyntaxError at pos with no source context
// (compile-time helpers rarely have the whole source string handy; the
// façade attaches Source/File when it surfaces the error to a caller).
func NewSyntaxError(pos word.Position, code, message string) *SyntaxError {
	return &SyntaxError{CompilerError: NewCompilerError(pos, message, "", ""), Code: code}
}

// ArityError is raised by ReplaceExprWord when a replacement Word's
// argument count disagrees with the Word it is replacing.
type ArityError struct {
	*CompilerError
	OldArgs, NewArgs int
}

func (e *ArityError) Kind() Kind { return KindArity }

// NewArityError builds an ArityError for a name/old-arity/new-arity
// mismatch.
func NewArityError(name string, oldArgs, newArgs int) *ArityError {
	msg := formatArityMessage(name, oldArgs, newArgs)
	return &ArityError{
		CompilerError: NewCompilerError(word.Position{}, msg, "", ""),
		OldArgs:       oldArgs,
		NewArgs:       newArgs,
	}
}

func formatArityMessage(name string, oldArgs, newArgs int) string {
	return "cannot replace '" + name + "': argument count mismatch (" +
		strconv.Itoa(oldArgs) + " vs " + strconv.Itoa(newArgs) + ")"
}

// MathError wraps a numeric-kernel failure (divide-by-zero, domain
// error) propagated from evaluation. During constant folding this
// aborts compilation; at runtime it aborts Evaluate.
type MathError struct {
	*CompilerError
}

func (e *MathError) Kind() Kind { return KindMath }

// NewMathError builds a MathError at pos.
func NewMathError(pos word.Position, message string) *MathError {
	return &MathError{CompilerError: NewCompilerError(pos, message, "", "")}
}

// EvalError is raised when a non-boolean-typed program is interpreted
// as boolean (Engine.AsBoolean on a plain numeric expression).
type EvalError struct {
	*CompilerError
}

func (e *EvalError) Kind() Kind { return KindEval }

// NewEvalError builds an EvalError.
func NewEvalError(message string) *EvalError {
	return &EvalError{CompilerError: NewCompilerError(word.Position{}, message, "", "")}
}

// Attach stamps Source and File onto err's embedded *CompilerError, so a
// caller holding the whole expression text (the façade, the CLI) can
// make Format/FormatWithContext render the offending source line. err is
// returned unchanged if it isn't one of this package's four error
// classes.
func Attach(err error, source, file string) error {
	var ce *CompilerError
	switch e := err.(type) {
	case *SyntaxError:
		ce = e.CompilerError
	case *ArityError:
		ce = e.CompilerError
	case *MathError:
		ce = e.CompilerError
	case *EvalError:
		ce = e.CompilerError
	default:
		return err
	}
	ce.Source = source
	ce.File = file
	return err
}
