package word

// ConstantPool is the parallel owner of every Word synthesized ad-hoc
// during compilation: numeric/string literals, string-compare fusions,
// and folded constants (spec.md §3, "Constants list"). It is freed along
// with the parser/compile call that created it; the Dictionary is not
// involved since these Words are never looked up by name.
type ConstantPool struct {
	words []*Word
}

// NewConstantPool returns an empty pool.
func NewConstantPool() *ConstantPool {
	return &ConstantPool{}
}

// Add registers w as owned by the pool and returns it, for convenient
// call-site chaining (`w := pool.Add(word.NewDoubleConstant(...))`).
func (p *ConstantPool) Add(w *Word) *Word {
	p.words = append(p.words, w)
	return w
}

// Len reports how many constants the pool currently owns.
func (p *ConstantPool) Len() int {
	return len(p.words)
}
