package exprcalc

import (
	"math"
	"strings"
	"testing"

	"github.com/nburlacu/exprcalc/internal/word"
)

func TestAddExpressionCachesBySourceText(t *testing.T) {
	e := New()
	i1, err := e.AddExpression("1+2")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	i2, err := e.AddExpression("1+2")
	if err != nil {
		t.Fatalf("AddExpression (second call): %v", err)
	}
	if i1 != i2 {
		t.Errorf("AddExpression(\"1+2\") twice returned different indices: %d, %d", i1, i2)
	}
	if len(e.entries) != 1 {
		t.Errorf("len(entries) = %d, want 1 (text-cache hit, not a new compile)", len(e.entries))
	}
}

func TestEvaluateSimple(t *testing.T) {
	e := New()
	got, err := e.Evaluate("1+2*3")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 7 {
		t.Errorf("Evaluate(\"1+2*3\") = %v, want 7", got)
	}
}

func TestCurrentIndexAndEvaluateCurrent(t *testing.T) {
	e := New()
	if e.CurrentIndex() != -1 {
		t.Fatalf("CurrentIndex() before any expression = %d, want -1", e.CurrentIndex())
	}
	idx, err := e.AddExpression("2*21")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if e.CurrentIndex() != idx {
		t.Errorf("CurrentIndex() = %d, want %d", e.CurrentIndex(), idx)
	}
	got, err := e.EvaluateCurrent()
	if err != nil {
		t.Fatalf("EvaluateCurrent: %v", err)
	}
	if got != 42 {
		t.Errorf("EvaluateCurrent() = %v, want 42", got)
	}
}

func TestEvaluateCurrentWithNoExpressionIsError(t *testing.T) {
	e := New()
	if _, err := e.EvaluateCurrent(); err == nil {
		t.Fatal("EvaluateCurrent() on a fresh Engine: expected an error, got nil")
	}
}

func TestDefineVariableAndReevaluate(t *testing.T) {
	e := New()
	x := 3.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	idx, err := e.AddExpression("4*4*x")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	got, err := e.Result(idx)
	_ = got
	if err != nil {
		t.Fatalf("Result before first Evaluate: %v", err)
	}
	got, err = e.Evaluate("4*4*x")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 48 {
		t.Errorf("Evaluate(\"4*4*x\") with x=3 = %v, want 48", got)
	}

	x = 5
	got, err = e.EvaluateCurrent()
	if err != nil {
		t.Fatalf("EvaluateCurrent after mutating x: %v", err)
	}
	if got != 80 {
		t.Errorf("EvaluateCurrent() with x=5 = %v, want 80", got)
	}
}

func TestSharedVariableAcrossExpressions(t *testing.T) {
	// "y:=x*2" then "y+1" must see the updated y (spec.md §8's
	// shared-generated-variable scenario): both expressions are compiled
	// against the same Engine dictionary, so the ":=" assignment's
	// GeneratedVariable for y is the same cell the second expression's
	// lookup resolves to.
	e := New()
	x := 2.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	if _, err := e.Evaluate("y:=x*2"); err != nil {
		t.Fatalf("Evaluate(\"y:=x*2\"): %v", err)
	}
	got, err := e.Evaluate("y+1")
	if err != nil {
		t.Fatalf("Evaluate(\"y+1\"): %v", err)
	}
	if got != 5 {
		t.Errorf("Evaluate(\"y+1\") after y:=x*2 = %v, want 5", got)
	}
}

func TestDefineVariableRewritesExistingPrograms(t *testing.T) {
	e := New()
	x1 := 1.0
	if err := e.DefineVariable("x", &x1); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	if _, err := e.Evaluate("x+1"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	x2 := 100.0
	if err := e.DefineVariable("x", &x2); err != nil {
		t.Fatalf("DefineVariable (redefine): %v", err)
	}
	got, err := e.Evaluate("x+1")
	if err != nil {
		t.Fatalf("Evaluate after redefine: %v", err)
	}
	if got != 101 {
		t.Errorf("Evaluate(\"x+1\") after redefining x to a new cell = %v, want 101", got)
	}
}

func TestAdjacentOperandsIsSyntaxError(t *testing.T) {
	// Relocated from internal/tree/build_test.go: shape.Check's
	// checkAdjacency rejects ")(" before tree.Build ever runs, so this
	// scenario is only reachable as a full-pipeline test at this level.
	e := New()
	if _, err := e.AddExpression("(x+1)(24-3)"); err == nil {
		t.Fatal("AddExpression(\"(x+1)(24-3)\"): expected a syntax error, got nil")
	}
}

func TestAsStringFormatsBoolean(t *testing.T) {
	e := New()
	idx, err := e.AddExpression("1=1")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if _, err := e.Evaluate("1=1"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	s, err := e.AsString(idx)
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if s != "true" {
		t.Errorf("AsString(\"1=1\") = %q, want \"true\"", s)
	}
}

func TestAsStringFormatsNumber(t *testing.T) {
	e := New()
	idx, err := e.AddExpression("3.5")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if _, err := e.EvaluateCurrent(); err != nil {
		t.Fatalf("EvaluateCurrent: %v", err)
	}
	s, err := e.AsString(idx)
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if s != "3.5" {
		t.Errorf("AsString(3.5) = %q, want \"3.5\"", s)
	}
}

func TestAsBooleanRejectsNonBooleanExpression(t *testing.T) {
	e := New()
	idx, err := e.AddExpression("1+1")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if _, err := e.EvaluateCurrent(); err != nil {
		t.Fatalf("EvaluateCurrent: %v", err)
	}
	if _, err := e.AsBoolean(idx); err == nil {
		t.Fatal("AsBoolean(\"1+1\"): expected an error, got nil")
	}
}

func TestAsHexFormatsRoundedInteger(t *testing.T) {
	e := New()
	idx, err := e.AddExpression("254.6")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if _, err := e.EvaluateCurrent(); err != nil {
		t.Fatalf("EvaluateCurrent: %v", err)
	}
	hex, err := e.AsHex(idx)
	if err != nil {
		t.Fatalf("AsHex: %v", err)
	}
	if !strings.EqualFold(hex, "ff") {
		t.Errorf("AsHex(254.6) = %q, want \"ff\" (round to 255)", hex)
	}
}

func TestHexLiteralParsing(t *testing.T) {
	e := New()
	got, err := e.Evaluate("$FF+1")
	if err != nil {
		t.Fatalf("Evaluate(\"$FF+1\"): %v", err)
	}
	if got != 256 {
		t.Errorf("Evaluate(\"$FF+1\") = %v, want 256", got)
	}
}

func TestCustomHexChar(t *testing.T) {
	e := New(WithHexChar('#'))
	got, err := e.Evaluate("#FF+1")
	if err != nil {
		t.Fatalf("Evaluate(\"#FF+1\"): %v", err)
	}
	if got != 256 {
		t.Errorf("Evaluate(\"#FF+1\") = %v, want 256", got)
	}
}

func TestCustomArgSeparator(t *testing.T) {
	e := New(WithArgSeparator(';'))
	got, err := e.Evaluate("min(1;2)")
	if err != nil {
		t.Fatalf("Evaluate(\"min(1;2)\") with ';' separator: %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"min(1;2)\") = %v, want 1", got)
	}
}

func TestFactorial(t *testing.T) {
	e := New()
	got, err := e.Evaluate("5!")
	if err != nil {
		t.Fatalf("Evaluate(\"5!\"): %v", err)
	}
	if got != 120 {
		t.Errorf("Evaluate(\"5!\") = %v, want 120", got)
	}
}

func TestStringInMembership(t *testing.T) {
	e := New()
	got, err := e.Evaluate("'a' in 'a,b,c'")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"'a' in 'a,b,c'\") = %v, want 1 (true)", got)
	}
}

func TestStringEqualityIsCaseInsensitive(t *testing.T) {
	e := New()
	got, err := e.Evaluate("'ABC'='abc'")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"'ABC'='abc'\") = %v, want 1 (case-insensitive string equality)", got)
	}
}

func TestDoubleNotCollapses(t *testing.T) {
	e := New()
	x := 0.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	got, err := e.Evaluate("not not x")
	if err != nil {
		t.Fatalf("Evaluate(\"not not x\"): %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(\"not not x\") with x=0 = %v, want 0", got)
	}
}

func TestIfFunctionScenario(t *testing.T) {
	e := New()
	x := -7.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	got, err := e.Evaluate("if(x>0,x,-x)")
	if err != nil {
		t.Fatalf("Evaluate(\"if(x>0,x,-x)\"): %v", err)
	}
	if got != 7 {
		t.Errorf("Evaluate(\"if(x>0,x,-x)\") with x=-7 = %v, want 7", got)
	}
}

func TestGetGeneratedVars(t *testing.T) {
	e := New()
	if _, err := e.Evaluate("a+b"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	names := e.GeneratedVarNames()
	if len(names) != 2 {
		t.Fatalf("GeneratedVarNames() = %v, want 2 entries (a, b)", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("GeneratedVarNames() = %v, want to contain both \"a\" and \"b\"", names)
	}
}

func TestClearExpressionsResetsCacheNotDictionary(t *testing.T) {
	e := New()
	x := 1.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	if _, err := e.Evaluate("x+1"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	e.ClearExpressions()
	if e.CurrentIndex() != -1 {
		t.Errorf("CurrentIndex() after ClearExpressions = %d, want -1", e.CurrentIndex())
	}
	if len(e.entries) != 0 {
		t.Errorf("len(entries) after ClearExpressions = %d, want 0", len(e.entries))
	}
	// The variable itself must still be registered.
	got, err := e.Evaluate("x+1")
	if err != nil {
		t.Fatalf("Evaluate after Clear: %v", err)
	}
	if got != 2 {
		t.Errorf("Evaluate(\"x+1\") after Clear with x=1 = %v, want 2", got)
	}
}

func TestDumpBareLeaf(t *testing.T) {
	e := New()
	idx, err := e.AddExpression("42")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	dump := e.Dump(idx)
	if !strings.Contains(dump, "leaf") {
		t.Errorf("Dump(\"42\") = %q, want it to mention \"leaf\"", dump)
	}
}

func TestDumpProgramSequence(t *testing.T) {
	e := New()
	x := 3.0
	if err := e.DefineVariable("x", &x); err != nil {
		t.Fatalf("DefineVariable: %v", err)
	}
	idx, err := e.AddExpression("4*4*x")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	dump := e.Dump(idx)
	if !strings.Contains(dump, "*/2") {
		t.Errorf("Dump(\"4*4*x\") = %q, want it to mention a \"*/2\" node", dump)
	}
}

func TestMissingOperandIsSyntaxError(t *testing.T) {
	e := New()
	if _, err := e.AddExpression("1+"); err == nil {
		t.Fatal("AddExpression(\"1+\"): expected a syntax error, got nil")
	}
}

func TestEvaluateEmptyExpressionIsNaN(t *testing.T) {
	e := New()
	got, err := e.Evaluate("")
	if err != nil {
		t.Fatalf("Evaluate(\"\"): unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("Evaluate(\"\") = %v, want NaN", got)
	}

	idx, err := e.AddExpression("   ")
	if err != nil {
		t.Fatalf("AddExpression(\"   \"): unexpected error: %v", err)
	}
	got, err = e.EvaluateCurrent()
	if err != nil {
		t.Fatalf("EvaluateCurrent() on whitespace-only entry: unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("EvaluateCurrent() on whitespace-only entry = %v, want NaN", got)
	}

	if got, err := e.Result(idx); err != nil || !math.IsNaN(got) {
		t.Errorf("Result(%d) = (%v, %v), want (NaN, nil)", idx, got, err)
	}
	if s := e.Dump(idx); !strings.Contains(s, "empty") {
		t.Errorf("Dump(%d) = %q, want it to mention the empty expression", idx, s)
	}
	if s, err := e.AsString(idx); err != nil || !strings.Contains(strings.ToLower(s), "nan") {
		t.Errorf("AsString(%d) = (%q, %v), want a NaN-ish string", idx, s, err)
	}
}

func TestDefineStringVariable(t *testing.T) {
	e := New()
	s := "hello"
	if err := e.DefineStringVariable("s", &s); err != nil {
		t.Fatalf("DefineStringVariable: %v", err)
	}
	got, err := e.Evaluate("s='hello'")
	if err != nil {
		t.Fatalf("Evaluate(\"s='hello'\"): %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"s='hello'\") with s=\"hello\" = %v, want 1", got)
	}

	s = "goodbye"
	got, err = e.Evaluate("s='hello'")
	if err != nil {
		t.Fatalf("Evaluate after mutating s: %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(\"s='hello'\") after setting s=\"goodbye\" = %v, want 0", got)
	}
}

func TestDefineFunction(t *testing.T) {
	e := New()
	double := func(n word.Node) { n.SetRes(n.Arg(0) * 2) }
	if err := e.DefineFunction("double", 1, double); err != nil {
		t.Fatalf("DefineFunction: %v", err)
	}
	got, err := e.Evaluate("double(21)")
	if err != nil {
		t.Fatalf("Evaluate(\"double(21)\"): %v", err)
	}
	if got != 42 {
		t.Errorf("Evaluate(\"double(21)\") = %v, want 42", got)
	}
}

func TestReplaceFunctionWithBooleanResult(t *testing.T) {
	e := New()
	isEven := func(n word.Node) {
		if int64(n.Arg(0))%2 == 0 {
			n.SetRes(1)
		} else {
			n.SetRes(0)
		}
	}
	w := word.NewBooleanFunction("iseven", 1, 0, false, false, isEven)
	if err := e.ReplaceFunction("iseven", w); err != nil {
		t.Fatalf("ReplaceFunction: %v", err)
	}
	idx, err := e.AddExpression("iseven(4)")
	if err != nil {
		t.Fatalf("AddExpression: %v", err)
	}
	if _, err := e.EvaluateCurrent(); err != nil {
		t.Fatalf("EvaluateCurrent: %v", err)
	}
	s, err := e.AsString(idx)
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if s != "true" {
		t.Errorf("AsString(\"iseven(4)\") = %q, want \"true\"", s)
	}
}

func TestDivisionByZeroReturnsError(t *testing.T) {
	e := New()
	if _, err := e.Evaluate("1/0"); err == nil {
		t.Fatal("Evaluate(\"1/0\"): expected an error, got nil")
	}
}
