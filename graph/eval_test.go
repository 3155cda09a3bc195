package graph

import (
	"math"
	"testing"
)

// evalX compiles src as the x(t) expression with the given where clause
// and evaluates it at tv.
func evalX(t *testing.T, src, where string, tv float64) float64 {
	t.Helper()

	p, err := Compile(src, "t", where)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	return p.X.Eval(tv, p.Assigns)
}

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		src  string
		t    float64
		want float64
	}{
		{name: "multiplication binds tighter", src: "2 + 3 * 4", want: 14},
		{name: "exponent is right associative", src: "2 ^ 3 ^ 2", want: 512},
		{name: "exponent binds tighter than negation", src: "-2 ^ 2", want: -4},
		{name: "euclidean modulo negative dividend", src: "-7 % 2", want: 1},
		{name: "euclidean modulo negative divisor", src: "7 % -2", want: 1},
		{name: "euclidean floor division negative dividend", src: "-7 // 2", want: -4},
		{name: "floor division positive", src: "10 // 3", want: 3},
		{name: "modulo positive", src: "10 % 3", want: 1},
		{name: "subtraction folds left", src: "10 - 4 - 3", want: 3},
		{name: "division folds left", src: "24 / 4 / 3", want: 2},
		{name: "double negation via subtraction", src: "2 - -1", want: 3},
		{name: "parameter", src: "2 * t", t: 3, want: 6},
		{name: "parenthesized grouping", src: "(2 + 3) * 4", want: 20},
		{name: "fractional exponent", src: "2 ^ 0.5", want: math.Sqrt2},
		{name: "tau", src: "tau", want: 2 * math.Pi},
		{name: "pi", src: "pi", want: math.Pi},
		{name: "e", src: "e", want: math.E},
		{name: "unary call", src: "sin 0", want: 0},
		{name: "call with parenthesized argument", src: "cos(0)", want: 1},
		{name: "binary call", src: "max 2 3", want: 3},
		{name: "atan2 operand order", src: "atan2 1 1", want: math.Pi / 4},
		{name: "fract positive", src: "fract 1.5", want: 0.5},
		{name: "fract negative keeps sign", src: "fract (-1.5)", want: -0.5},
		{name: "sign negative", src: "sign (-0.5)", want: -1},
		{name: "sign zero", src: "sign 0", want: 1},
		{name: "literal overflow saturates", src: "1e999", want: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalX(t, tt.src, "", tt.t)
			if got != tt.want {
				t.Errorf("%s = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestEval_IEEESpecialValues(t *testing.T) {
	if got := evalX(t, "1 / 0", "", 0); !math.IsInf(got, 1) {
		t.Errorf("1 / 0 = %v, want +Inf", got)
	}

	if got := evalX(t, "-1 / 0", "", 0); !math.IsInf(got, -1) {
		t.Errorf("-1 / 0 = %v, want -Inf", got)
	}

	if got := evalX(t, "0 / 0", "", 0); !math.IsNaN(got) {
		t.Errorf("0 / 0 = %v, want NaN", got)
	}

	if got := evalX(t, "sqrt (-1)", "", 0); !math.IsNaN(got) {
		t.Errorf("sqrt(-1) = %v, want NaN", got)
	}

	// min and max ignore a NaN operand rather than propagating it.
	if got := evalX(t, "min (0 / 0) 2", "", 0); got != 2 {
		t.Errorf("min(NaN, 2) = %v, want 2", got)
	}

	if got := evalX(t, "max 2 (0 / 0)", "", 0); got != 2 {
		t.Errorf("max(2, NaN) = %v, want 2", got)
	}

	if got := evalX(t, "sign (0 / 0)", "", 0); !math.IsNaN(got) {
		t.Errorf("sign(NaN) = %v, want NaN", got)
	}
}

func TestEval_Assignments(t *testing.T) {
	got := evalX(t, "v", "u = 2 * t - 4\nv = u + t * 0", 3)
	if got != 2 {
		t.Errorf("v at t=3 = %v, want 2", got)
	}

	// A reference re-evaluates its assignment at the current t.
	got = evalX(t, "u + u", "u = t", 5)
	if got != 10 {
		t.Errorf("u + u at t=5 = %v, want 10", got)
	}
}

func TestEuclid(t *testing.T) {
	tests := []struct {
		a, b float64
		quo  float64
		rem  float64
	}{
		{a: 7, b: 2, quo: 3, rem: 1},
		{a: -7, b: 2, quo: -4, rem: 1},
		{a: 7, b: -2, quo: -3, rem: 1},
		{a: -7, b: -2, quo: 4, rem: 1},
		{a: 7.5, b: 2, quo: 3, rem: 1.5},
		{a: -7.5, b: 2, quo: -4, rem: 0.5},
		{a: 0, b: 3, quo: 0, rem: 0},
	}

	for _, tt := range tests {
		if got := divEuclid(tt.a, tt.b); got != tt.quo {
			t.Errorf("divEuclid(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.quo)
		}

		if got := remEuclid(tt.a, tt.b); got != tt.rem {
			t.Errorf("remEuclid(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.rem)
		}
	}
}

func TestParametric_Points(t *testing.T) {
	p, err := Compile("t", "2 * t", "")
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	pts := p.Points(4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}

	if pts[0].T != 0 || pts[4].T != 1 {
		t.Errorf("endpoints = %v, %v, want 0, 1", pts[0].T, pts[4].T)
	}

	for _, pt := range pts {
		if pt.X != pt.T || pt.Y != 2*pt.T {
			t.Errorf("point %+v does not lie on the curve", pt)
		}
	}
}
