package graph

import "math"

// Evaluation is pure and allocation-free. Arithmetic follows IEEE 754
// throughout: division by zero yields an infinity or NaN, and no node
// has a failure mode of its own.

// Eval returns t.
func (Param) Eval(t float64, _ []Function) float64 { return t }

// Eval evaluates the referenced assignment with the same t and assigns.
func (r Ref) Eval(t float64, assigns []Function) float64 {
	return assigns[r].Eval(t, assigns)
}

// Eval returns the constant.
func (c Const) Eval(float64, []Function) float64 { return float64(c) }

// Eval folds the chain left to right starting from 0.
func (a Add) Eval(t float64, assigns []Function) float64 {
	acc := 0.0

	for _, term := range a {
		v := term.F.Eval(t, assigns)

		switch term.Op {
		case OpAdd:
			acc += v
		case OpSub:
			acc -= v
		}
	}

	return acc
}

// Eval folds the chain left to right starting from 1. Floor division
// and modulo use the Euclidean variants, not the truncating ones.
func (m Mul) Eval(t float64, assigns []Function) float64 {
	acc := 1.0

	for _, term := range m {
		v := term.F.Eval(t, assigns)

		switch term.Op {
		case OpMul:
			acc *= v
		case OpDiv:
			acc /= v
		case OpFloorDiv:
			acc = divEuclid(acc, v)
		case OpMod:
			acc = remEuclid(acc, v)
		}
	}

	return acc
}

// Eval folds the chain right to left seeded with 1, computing
// pow(base, acc) at each step, so a ^ b ^ c is a ^ (b ^ c).
func (e Exp) Eval(t float64, assigns []Function) float64 {
	acc := 1.0

	for i := len(e) - 1; i >= 0; i-- {
		acc = math.Pow(e[i].Eval(t, assigns), acc)
	}

	return acc
}

// Eval negates the operand.
func (n Neg) Eval(t float64, assigns []Function) float64 {
	return -n.F.Eval(t, assigns)
}

// Eval applies the bound unary primitive.
func (c Call1) Eval(t float64, assigns []Function) float64 {
	return c.Fn.Call(c.Arg.Eval(t, assigns))
}

// Eval applies the bound binary primitive in operand order.
func (c Call2) Eval(t float64, assigns []Function) float64 {
	return c.Fn.Call(c.Args[0].Eval(t, assigns), c.Args[1].Eval(t, assigns))
}

// remEuclid returns the Euclidean remainder of a and b. The result is
// always in [0, |b|) for finite nonzero b, unlike math.Mod which keeps
// the sign of a.
func remEuclid(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
	}

	return r
}

// divEuclid returns the Euclidean quotient of a and b: the q satisfying
// a = q*b + r with 0 <= r < |b|, for finite operands.
func divEuclid(a, b float64) float64 {
	q := math.Trunc(a / b)
	if math.Mod(a, b) < 0 {
		if b > 0 {
			return q - 1
		}

		return q + 1
	}

	return q
}
