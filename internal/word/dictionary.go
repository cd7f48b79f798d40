package word

import "strings"

// Dictionary is an ordered, name-keyed mapping of lowercase name to
// *Word. It backs both the built-in operator/function table and the
// user-registered variable/function table; callers never hold a bare
// name after insertion, only the returned *Word.
//
// The dictionary owns every Word added to it; the expression tree and
// the linearized program only ever borrow pointers into it.
type Dictionary struct {
	names []string
	words []*Word
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{}
}

// Search looks up name (case-insensitively) and returns the matching
// Word and its index, or (nil, -1) if absent.
func (d *Dictionary) Search(name string) (*Word, int) {
	lname := strings.ToLower(name)
	for i, n := range d.names {
		if n == lname {
			return d.words[i], i
		}
	}
	return nil, -1
}

// Add appends w under its (lowercased) Name. The caller must have
// already checked for a duplicate name via Search if replace-in-place
// semantics are required.
func (d *Dictionary) Add(w *Word) {
	d.names = append(d.names, strings.ToLower(w.Name))
	d.words = append(d.words, w)
}

// AtFree removes the entry at index i, freeing its slot. Ownership of
// the removed Word passes to the caller (who is expected to be in the
// middle of a replace-in-place operation and about to discard it).
func (d *Dictionary) AtFree(i int) {
	if i < 0 || i >= len(d.words) {
		return
	}
	d.names = append(d.names[:i], d.names[i+1:]...)
	d.words = append(d.words[:i], d.words[i+1:]...)
}

// All returns every Word currently in the dictionary, in insertion
// order. Callers must not mutate the returned slice.
func (d *Dictionary) All() []*Word {
	return d.words
}

// GeneratedVariables returns every Word of kind KindGeneratedVariable
// currently registered — the façade's GetGeneratedVars operation
// (spec.md §4.8).
func (d *Dictionary) GeneratedVariables() []*Word {
	var out []*Word
	for _, w := range d.words {
		if w.Kind == KindGeneratedVariable {
			out = append(out, w)
		}
	}
	return out
}
