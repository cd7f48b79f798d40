package kernel

import (
	"math"

	"github.com/nburlacu/exprcalc/internal/word"
)

// toInt rounds a float64 operand to the nearest int64, the representation
// spec.md §4.6 specifies for the bitwise logical operators: operands are
// rounded rather than truncated so that a boolean 0.0/1.0 result from an
// upstream comparison survives intact.
func toInt(v float64) int64 { return int64(math.Round(v)) }

// And implements 'and' as a bitwise AND over rounded integer operands.
// Applied to two 0/1 boolean operands this is ordinary logical AND.
func And(n word.Node) { n.SetRes(float64(toInt(n.Arg(0)) & toInt(n.Arg(1)))) }

// Or implements 'or' as a bitwise OR over rounded integer operands.
func Or(n word.Node) { n.SetRes(float64(toInt(n.Arg(0)) | toInt(n.Arg(1)))) }

// Xor implements 'xor' as a bitwise XOR over rounded integer operands.
func Xor(n word.Node) { n.SetRes(float64(toInt(n.Arg(0)) ^ toInt(n.Arg(1)))) }

// Not implements prefix 'not' as boolean negation of the rounded operand
// coerced to a boolean: any nonzero rounded value is true.
func Not(n word.Node) {
	n.SetRes(boolToFloat(toInt(n.Arg(0)) == 0))
}
