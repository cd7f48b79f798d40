package shape

import (
	"testing"

	"github.com/nburlacu/exprcalc/internal/kernel"
	"github.com/nburlacu/exprcalc/internal/lexer"
	"github.com/nburlacu/exprcalc/internal/word"
)

func lexAll(t *testing.T, src string, dict *word.Dictionary, pool *word.ConstantPool) []*word.Word {
	t.Helper()
	lx := lexer.New(src)
	var tokens []*word.Word
	for {
		tok, err := lx.Next(dict, pool)
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}
		if tok == nil {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func names(tokens []*word.Word) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Name
	}
	return out
}

func newTestDict() *word.Dictionary {
	d := word.NewDictionary()
	for _, w := range kernel.Builtins() {
		d.Add(w)
	}
	return d
}

func TestCollapseSignRuns(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"-3", []string{"-@", "3"}},
		{"--3", []string{"+@", "3"}},
		{"---3", []string{"-@", "3"}},
		{"+-3", []string{"-@", "3"}},
		{"3--3", []string{"3", "-", "-@", "3"}}, // binary '-' followed by unary '-'
	}
	for i, tt := range tests {
		dict := newTestDict()
		pool := word.NewConstantPool()
		tokens := lexAll(t, tt.src, dict, pool)
		got := collapse(tokens, dict)
		if gotNames := names(got); !equalStrings(gotNames, tt.want) {
			t.Errorf("tests[%d]: collapse(%q) = %v, want %v", i, tt.src, gotNames, tt.want)
		}
	}
}

func TestCollapseDoubleNot(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"not not x", []string{"x"}},
		{"not x", []string{"not", "x"}},
		{"not not not x", []string{"not", "x"}},
	}
	for i, tt := range tests {
		dict := newTestDict()
		pool := word.NewConstantPool()
		tokens := lexAll(t, tt.src, dict, pool)
		got := collapse(tokens, dict)
		if gotNames := names(got); !equalStrings(gotNames, tt.want) {
			t.Errorf("tests[%d]: collapse(%q) = %v, want %v", i, tt.src, gotNames, tt.want)
		}
	}
}

func TestPromoteIntegerPower(t *testing.T) {
	dict := newTestDict()
	pool := word.NewConstantPool()
	tokens := lexAll(t, "2^3", dict, pool)
	tokens = promoteIntegerPower(tokens, dict)
	if tokens[1].Name != "^@" {
		t.Errorf("promoteIntegerPower(\"2^3\")[1].Name = %q, want \"^@\"", tokens[1].Name)
	}

	tokens2 := lexAll(t, "2^3.5", dict, pool)
	tokens2 = promoteIntegerPower(tokens2, dict)
	if tokens2[1].Name != "^" {
		t.Errorf("promoteIntegerPower(\"2^3.5\")[1].Name = %q, want \"^\" (not promoted)", tokens2[1].Name)
	}
}

func TestCheckAdjacencyErrors(t *testing.T) {
	tests := []string{
		"(x)(y)", // ) followed by (
		"()",     // empty brackets
		"x y",    // two adjacent operands
	}
	dict := newTestDict()
	for i, src := range tests {
		pool := word.NewConstantPool()
		tokens := lexAll(t, src, dict, pool)
		if err := checkAdjacency(tokens); err == nil {
			t.Errorf("tests[%d]: checkAdjacency(%q) = nil, want an error", i, src)
		}
	}
}

func TestFuseStringCompares(t *testing.T) {
	dict := newTestDict()
	pool := word.NewConstantPool()
	tokens := lexAll(t, "'a'='a'", dict, pool)
	fused := fuseStringCompares(tokens, dict, pool)
	if len(fused) != 1 {
		t.Fatalf("fuseStringCompares(\"'a'='a'\") = %d tokens, want 1", len(fused))
	}
	if fused[0].Kind != word.KindLogicalStringOper {
		t.Errorf("fuseStringCompares result Kind = %v, want KindLogicalStringOper", fused[0].Kind)
	}
}

func TestCheckFullPipeline(t *testing.T) {
	dict := newTestDict()
	pool := word.NewConstantPool()
	tokens := lexAll(t, "-x + not not y", dict, pool)
	shaped, err := Check(tokens, dict, pool)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	want := []string{"-@", "x", "+", "y"}
	if got := names(shaped); !equalStrings(got, want) {
		t.Errorf("Check(\"-x + not not y\") = %v, want %v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
