// Package exprcalc is the public façade (spec.md §4.8, "Registry"): it
// owns a word.Dictionary, compiles and caches expressions by source
// text, and exposes the result-formatting surface (Result, AsString,
// AsBoolean, AsHex) spec.md treats as "external collaborator" concerns
// that the core compiler doesn't need to know about.
//
// Grounded on the teacher's cmd/dwscript root-command wiring for the
// functional-options construction idiom, generalized here to configure
// a library type rather than a CLI command.
package exprcalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nburlacu/exprcalc/internal/errors"
	"github.com/nburlacu/exprcalc/internal/fold"
	"github.com/nburlacu/exprcalc/internal/kernel"
	"github.com/nburlacu/exprcalc/internal/lexer"
	"github.com/nburlacu/exprcalc/internal/program"
	"github.com/nburlacu/exprcalc/internal/shape"
	"github.com/nburlacu/exprcalc/internal/tree"
	"github.com/nburlacu/exprcalc/internal/word"
)

// entry is one compiled expression (spec.md §3, "Compiled expression
// entry"): either a linearized program (head != nil) or, when the whole
// expression reduced to a single variable or constant, a bare leaf with
// no program at all.
type entry struct {
	text      string
	head      *tree.ExprRec
	leaf      *tree.ExprRec
	isBoolean bool
	value     float64

	// isEmpty marks an entry compiled from text that is empty once
	// trimmed: spec.md's registry never runs the lex/shape/build
	// pipeline over it, it just stands for a NaN result.
	isEmpty bool
}

// Engine is the compile cache, dictionary owner, and result formatter.
// It is not safe for concurrent use without external synchronization,
// matching the teacher's single-threaded command/parser types.
type Engine struct {
	dict       *word.Dictionary
	locale     lexer.Locale
	entries    []*entry
	textIndex  map[string]int
	currentIdx int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithHexChar overrides the default '$' hex-literal prefix.
func WithHexChar(ch byte) Option {
	return func(e *Engine) { e.locale.HexChar = ch }
}

// WithArgSeparator overrides the default ',' function-argument separator.
func WithArgSeparator(ch byte) Option {
	return func(e *Engine) { e.locale.ArgSeparator = ch }
}

// New creates an Engine seeded with the built-in operator/function table.
func New(opts ...Option) *Engine {
	e := &Engine{
		dict:       word.NewDictionary(),
		locale:     lexer.DefaultLocale,
		textIndex:  make(map[string]int),
		currentIdx: -1,
	}
	for _, w := range kernel.Builtins() {
		e.dict.Add(w)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefineVariable registers name as a numeric variable backed by cell. If
// name is already registered, every previously compiled program is
// rewritten in place to point at cell instead (spec.md §4.1).
func (e *Engine) DefineVariable(name string, cell *float64) error {
	return e.define(name, word.NewDoubleVariable(name, cell))
}

// DefineStringVariable registers name as a string variable backed by cell.
func (e *Engine) DefineStringVariable(name string, cell *string) error {
	return e.define(name, word.NewStringVariable(name, cell))
}

// DefineFunction registers name as a callable function of nArgs arguments
// evaluated by k.
func (e *Engine) DefineFunction(name string, nArgs int, k word.Kernel) error {
	return e.define(name, word.NewFunction(name, nArgs, 0, false, false, k))
}

// ReplaceFunction is DefineFunction for a caller that already built the
// replacement Word (e.g. a boolean-result function, or one that carries
// CanVary).
func (e *Engine) ReplaceFunction(name string, w *word.Word) error {
	return e.define(name, w)
}

func (e *Engine) define(name string, newWord *word.Word) error {
	if existing, idx := e.dict.Search(name); existing != nil {
		if err := e.ReplaceExprWord(existing, newWord); err != nil {
			return err
		}
		e.dict.AtFree(idx)
	}
	e.dict.Add(newWord)
	return nil
}

// ReplaceExprWord rewrites every compiled program's references to old
// into references to newWord: the node's Word/Op, and any Args slot
// pointing at old's backing variable cell (spec.md §4.1).
func (e *Engine) ReplaceExprWord(old, newWord *word.Word) error {
	if old.NArgs != newWord.NArgs {
		return errors.NewArityError(old.Name, old.NArgs, newWord.NArgs)
	}
	for _, ent := range e.entries {
		for n := ent.head; n != nil; n = n.Next {
			rewriteNode(n, old, newWord)
		}
		if ent.leaf != nil {
			rewriteNode(ent.leaf, old, newWord)
		}
	}
	return nil
}

func rewriteNode(n *tree.ExprRec, old, newWord *word.Word) {
	if n.Word() == old {
		n.W = newWord
		n.Op = newWord.Op
	}
	if old.IsVariable() {
		for i := range n.Args {
			if n.Args[i] == old.FloatCell {
				n.Args[i] = newWord.FloatCell
			}
		}
	}
}

// AddExpression compiles text if it isn't already cached, returning its
// index either way, and marks it the "current" entry.
func (e *Engine) AddExpression(text string) (int, error) {
	if idx, ok := e.textIndex[text]; ok {
		e.currentIdx = idx
		return idx, nil
	}
	ent, err := e.compile(text)
	if err != nil {
		return -1, err
	}
	idx := len(e.entries)
	e.entries = append(e.entries, ent)
	e.textIndex[text] = idx
	e.currentIdx = idx
	return idx, nil
}

// Evaluate compiles text if needed (via AddExpression) and evaluates it,
// returning the result.
func (e *Engine) Evaluate(text string) (float64, error) {
	idx, err := e.AddExpression(text)
	if err != nil {
		return 0, err
	}
	return e.evaluateIndex(idx)
}

// CurrentIndex returns the index of the most recently added/looked-up
// entry, or -1 if none exists yet.
func (e *Engine) CurrentIndex() int {
	return e.currentIdx
}

// EvaluateCurrent re-evaluates the most recently added/looked-up entry.
func (e *Engine) EvaluateCurrent() (float64, error) {
	if e.currentIdx < 0 {
		return 0, errors.NewEvalError("no current expression")
	}
	return e.evaluateIndex(e.currentIdx)
}

func (e *Engine) evaluateIndex(idx int) (float64, error) {
	ent := e.entries[idx]
	if ent.isEmpty {
		return ent.value, nil
	}
	var v float64
	var err error
	if ent.head != nil {
		v, err = program.Evaluate(ent.head)
	} else {
		v = leafValue(ent.leaf.Word())
	}
	if err != nil {
		return 0, errors.Attach(err, ent.text, "")
	}
	ent.value = v
	return v, nil
}

func leafValue(w *word.Word) float64 {
	switch w.Kind {
	case word.KindDoubleVariable, word.KindGeneratedVariable:
		if w.FloatCell != nil {
			return *w.FloatCell
		}
	case word.KindDoubleConstant, word.KindBooleanConstant:
		return w.Value
	}
	return 0
}

// Result returns the last evaluated value of entry idx without
// re-evaluating it.
func (e *Engine) Result(idx int) (float64, error) {
	if idx < 0 || idx >= len(e.entries) {
		return 0, errors.NewEvalError("expression index out of range")
	}
	return e.entries[idx].value, nil
}

// AsString formats entry idx's last result: "true"/"false" if the
// expression is boolean-typed, otherwise a plain decimal.
func (e *Engine) AsString(idx int) (string, error) {
	if idx < 0 || idx >= len(e.entries) {
		return "", errors.NewEvalError("expression index out of range")
	}
	ent := e.entries[idx]
	if ent.isBoolean {
		return strconv.FormatBool(ent.value != 0), nil
	}
	return strconv.FormatFloat(ent.value, 'g', -1, 64), nil
}

// AsBoolean returns entry idx's last result as a bool. It is an
// EvalError to call this on a non-boolean-typed expression.
func (e *Engine) AsBoolean(idx int) (bool, error) {
	if idx < 0 || idx >= len(e.entries) {
		return false, errors.NewEvalError("expression index out of range")
	}
	ent := e.entries[idx]
	if !ent.isBoolean {
		return false, errors.NewEvalError(fmt.Sprintf("expression %q is not boolean-typed", ent.text))
	}
	return ent.value != 0, nil
}

// AsHex formats entry idx's last result as a lowercase hexadecimal
// integer (the value rounded to the nearest int64).
func (e *Engine) AsHex(idx int) (string, error) {
	if idx < 0 || idx >= len(e.entries) {
		return "", errors.NewEvalError("expression index out of range")
	}
	v := e.entries[idx].value
	return strconv.FormatInt(int64(math.Round(v)), 16), nil
}

// GetGeneratedVars returns every Word implicitly created by referencing
// an undeclared identifier.
func (e *Engine) GetGeneratedVars() []*word.Word {
	return e.dict.GeneratedVariables()
}

// GeneratedVarNames is a formatting convenience over GetGeneratedVars.
func (e *Engine) GeneratedVarNames() []string {
	vars := e.GetGeneratedVars()
	names := make([]string, len(vars))
	for i, w := range vars {
		names[i] = w.Name
	}
	return names
}

// ClearExpressions discards every compiled entry and the compile cache,
// but leaves the dictionary (variables, user functions, generated
// variables) untouched.
func (e *Engine) ClearExpressions() {
	e.entries = nil
	e.textIndex = make(map[string]int)
	e.currentIdx = -1
}

// Dump renders a compiled program's node sequence for debugging: each
// node's Word name, arity, and whether it's boolean-typed, in evaluation
// order.
func (e *Engine) Dump(idx int) string {
	if idx < 0 || idx >= len(e.entries) {
		return ""
	}
	ent := e.entries[idx]
	if ent.isEmpty {
		return "(empty expression, NaN)"
	}
	if ent.head == nil {
		w := ent.leaf.Word()
		return fmt.Sprintf("%s (leaf, bool=%v)", w.Name, w.IsBoolean())
	}
	var sb strings.Builder
	for n := ent.head; n != nil; n = n.Next {
		w := n.Word()
		fmt.Fprintf(&sb, "%s/%d", w.Name, w.Arity())
		if w.IsBoolean() {
			sb.WriteString("[bool]")
		}
		if n.Next != nil {
			sb.WriteString(" -> ")
		}
	}
	return sb.String()
}

// compile runs the full lex/shape/build/fold/linearize pipeline over
// text and wraps the result in an entry.
func (e *Engine) compile(text string) (*entry, error) {
	if strings.TrimSpace(text) == "" {
		return &entry{text: text, isEmpty: true, value: math.NaN()}, nil
	}

	pool := word.NewConstantPool()
	lx := lexer.New(text, lexer.WithLocale(e.locale))

	var tokens []*word.Word
	for {
		t, err := lx.Next(e.dict, pool)
		if err != nil {
			return nil, errors.Attach(toSyntaxError(err), text, "")
		}
		if t == nil {
			break
		}
		tokens = append(tokens, t)
	}

	shaped, err := shape.Check(tokens, e.dict, pool)
	if err != nil {
		return nil, errors.Attach(err, text, "")
	}

	root, err := tree.Build(shaped)
	if err != nil {
		return nil, errors.Attach(err, text, "")
	}

	folded, err := fold.Fold(root, pool)
	if err != nil {
		return nil, errors.Attach(err, text, "")
	}

	head, err := program.Linearize(folded)
	if err != nil {
		return nil, errors.Attach(err, text, "")
	}
	ent := &entry{text: text}
	if head == nil {
		ent.leaf = folded
		ent.isBoolean = folded.Word().IsBoolean()
	} else {
		ent.head = head
		tail := head
		for tail.Next != nil {
			tail = tail.Next
		}
		ent.isBoolean = tail.Word().IsBoolean()
	}
	return ent, nil
}

// toSyntaxError adapts a *lexer.Error (which carries no error code) into
// the façade's SyntaxError taxonomy.
func toSyntaxError(err error) error {
	if le, ok := err.(*lexer.Error); ok {
		return errors.NewSyntaxError(le.Pos, errors.CodeInvalidNumeric, le.Message)
	}
	return err
}
