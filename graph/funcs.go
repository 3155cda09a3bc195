package graph

import (
	"math"
	"slices"
)

// Unary identifies a registered single-argument function. The registry
// is closed: values are only created by LookupUnary at build time.
type Unary int

// Binary identifies a registered two-argument function.
type Binary int

const (
	unarySin Unary = iota
	unaryCos
	unaryTan
	unaryAsin
	unaryAcos
	unaryAtan
	unarySinh
	unaryCosh
	unaryTanh
	unaryAsinh
	unaryAcosh
	unaryAtanh
	unaryLn
	unaryLog2
	unaryLog10
	unarySqrt
	unaryCbrt
	unaryAbs
	unarySign
	unaryFloor
	unaryCeil
	unaryFract
)

const (
	binaryMin Binary = iota
	binaryMax
	binaryAtan2
)

var unaryNames = map[string]Unary{
	"sin":   unarySin,
	"cos":   unaryCos,
	"tan":   unaryTan,
	"asin":  unaryAsin,
	"acos":  unaryAcos,
	"atan":  unaryAtan,
	"sinh":  unarySinh,
	"cosh":  unaryCosh,
	"tanh":  unaryTanh,
	"asinh": unaryAsinh,
	"acosh": unaryAcosh,
	"atanh": unaryAtanh,
	"ln":    unaryLn,
	"log2":  unaryLog2,
	"log10": unaryLog10,
	"sqrt":  unarySqrt,
	"cbrt":  unaryCbrt,
	"abs":   unaryAbs,
	"sign":  unarySign,
	"floor": unaryFloor,
	"ceil":  unaryCeil,
	"fract": unaryFract,
}

var binaryNames = map[string]Binary{
	"min":   binaryMin,
	"max":   binaryMax,
	"atan2": binaryAtan2,
}

// unaryFns is indexed by Unary. Order must match the constants above.
var unaryFns = [...]func(float64) float64{
	math.Sin,
	math.Cos,
	math.Tan,
	math.Asin,
	math.Acos,
	math.Atan,
	math.Sinh,
	math.Cosh,
	math.Tanh,
	math.Asinh,
	math.Acosh,
	math.Atanh,
	math.Log,
	math.Log2,
	math.Log10,
	math.Sqrt,
	math.Cbrt,
	math.Abs,
	sign,
	math.Floor,
	math.Ceil,
	fract,
}

// binaryFns is indexed by Binary.
var binaryFns = [...]func(float64, float64) float64{
	minNum,
	maxNum,
	math.Atan2,
}

// constants maps reserved names to their values. Assignments to these
// names are rejected, and references resolve here before the variable
// resolver is consulted.
var constants = map[string]float64{
	"tau": 2 * math.Pi,
	"pi":  math.Pi,
	"e":   math.E,
}

// LookupUnary resolves a function name against the unary registry.
func LookupUnary(name string) (Unary, bool) {
	fn, ok := unaryNames[name]

	return fn, ok
}

// LookupBinary resolves a function name against the binary registry.
func LookupBinary(name string) (Binary, bool) {
	fn, ok := binaryNames[name]

	return fn, ok
}

// LookupConstant resolves a reserved constant name.
func LookupConstant(name string) (float64, bool) {
	v, ok := constants[name]

	return v, ok
}

// Call applies the bound primitive.
func (u Unary) Call(x float64) float64 { return unaryFns[u](x) }

// Call applies the bound primitive, preserving operand order.
func (b Binary) Call(x, y float64) float64 { return binaryFns[b](x, y) }

// UnaryNames returns the registered unary function names, sorted.
func UnaryNames() []string { return sortedKeys(unaryNames) }

// BinaryNames returns the registered binary function names, sorted.
func BinaryNames() []string { return sortedKeys(binaryNames) }

// ConstantNames returns the reserved constant names, sorted.
func ConstantNames() []string { return sortedKeys(constants) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// sign returns NaN for NaN and otherwise +1 or -1 by the sign bit,
// so sign(0) is 1 and sign(-0) is -1.
func sign(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}

	return math.Copysign(1, x)
}

// fract returns the fractional part of x, keeping its sign.
func fract(x float64) float64 { return x - math.Trunc(x) }

// minNum and maxNum ignore a NaN operand, returning the other operand.
// math.Min and math.Max instead propagate NaN.

func minNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a < b:
		return a
	default:
		return b
	}
}

func maxNum(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	default:
		return b
	}
}
