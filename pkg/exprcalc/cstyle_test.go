package exprcalc

import "testing"

func TestCStyleLogicalAnd(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("1 && 0")
	if err != nil {
		t.Fatalf("Evaluate(\"1 && 0\"): %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(\"1 && 0\") = %v, want 0", got)
	}
}

func TestCStyleLogicalOr(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("1 || 0")
	if err != nil {
		t.Fatalf("Evaluate(\"1 || 0\"): %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"1 || 0\") = %v, want 1", got)
	}
}

func TestCStyleEquality(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("2 == 2")
	if err != nil {
		t.Fatalf("Evaluate(\"2 == 2\"): %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"2 == 2\") = %v, want 1", got)
	}
}

func TestCStyleInequality(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("2 != 3")
	if err != nil {
		t.Fatalf("Evaluate(\"2 != 3\"): %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"2 != 3\") = %v, want 1", got)
	}
}

func TestCStyleAssignment(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("x = 5")
	if err != nil {
		t.Fatalf("Evaluate(\"x = 5\"): %v", err)
	}
	if got != 5 {
		t.Errorf("Evaluate(\"x = 5\") = %v, want 5", got)
	}
}

func TestCStylePrefixNot(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("!(1 == 1)")
	if err != nil {
		t.Fatalf("Evaluate(\"!(1 == 1)\"): %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(\"!(1 == 1)\") = %v, want 0", got)
	}
}

func TestCStyleFactFunction(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("fact(5)")
	if err != nil {
		t.Fatalf("Evaluate(\"fact(5)\"): %v", err)
	}
	if got != 120 {
		t.Errorf("Evaluate(\"fact(5)\") = %v, want 120", got)
	}
}

func TestCStylePercFunction(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("perc(50)")
	if err != nil {
		t.Fatalf("Evaluate(\"perc(50)\"): %v", err)
	}
	if got != 0.5 {
		t.Errorf("Evaluate(\"perc(50)\") = %v, want 0.5", got)
	}
}

func TestCStyleInfixModulo(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("7 % 2")
	if err != nil {
		t.Fatalf("Evaluate(\"7 %% 2\"): %v", err)
	}
	if got != 1 {
		t.Errorf("Evaluate(\"7 %% 2\") = %v, want 1", got)
	}
}

func TestCStyleDivFunction(t *testing.T) {
	e := New(WithCStyle())
	got, err := e.Evaluate("div(7,2)")
	if err != nil {
		t.Fatalf("Evaluate(\"div(7,2)\"): %v", err)
	}
	if got != 3 {
		t.Errorf("Evaluate(\"div(7,2)\") = %v, want 3", got)
	}
}

// TestCStyleNativeSpellingsRemoved confirms WithCStyle performs a true
// dictionary swap: every native spelling it replaces must be gone, not
// merely aliased.
func TestCStyleNativeSpellingsRemoved(t *testing.T) {
	e := New(WithCStyle())
	rejected := []string{
		"1 and 0",
		"1 or 0",
		"not 1",
		"x := 5",
		"2 <> 3",
		"7 mod 2",
		"7 div 2",
		"5!",
		"50%",
	}
	for _, src := range rejected {
		if _, err := e.Evaluate(src); err == nil {
			t.Errorf("Evaluate(%q) under WithCStyle: expected an error, got nil", src)
		}
	}
}

func TestWithoutCStyleRejectsCOperators(t *testing.T) {
	e := New()
	if _, err := e.Evaluate("1 && 0"); err == nil {
		t.Fatal("Evaluate(\"1 && 0\") without WithCStyle: expected an error, got nil")
	}
}

func TestWithoutCStyleNativeSpellingsStillWork(t *testing.T) {
	e := New()
	got, err := e.Evaluate("1 and 0")
	if err != nil {
		t.Fatalf("Evaluate(\"1 and 0\"): %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(\"1 and 0\") = %v, want 0", got)
	}
}
