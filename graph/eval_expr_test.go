package graph

import (
	"math"
	"testing"

	"github.com/expr-lang/expr"
)

// TestEval_AgainstExprLang cross-checks the four conventional arithmetic
// operators against expr-lang, which shares their precedence and
// left-associativity. Floor division, Euclidean modulo, right-associative
// exponentiation and prefix calls have no expr-lang counterpart and are
// covered by TestEval_Arithmetic instead.
func TestEval_AgainstExprLang(t *testing.T) {
	exprs := []string{
		"t + 2.0 * 3.5",
		"t * 3.5 + 1.25 - t / 2.0",
		"(t + 1.0) * (t - 1.0)",
		"t - t / 4.0 - t / 8.0",
		"1.0 / (t + 2.0) + t * t",
		"t * t * t - 2.5 * t + 0.125",
	}

	samples := []float64{-2, -0.5, 0, 0.25, 1, 3.75}

	for _, src := range exprs {
		p, err := Compile(src, "t", "")
		if err != nil {
			t.Fatalf("compile error on %q: %v", src, err)
		}

		program, err := expr.Compile(src, expr.Env(map[string]any{"t": 0.0}))
		if err != nil {
			t.Fatalf("expr-lang compile error on %q: %v", src, err)
		}

		for _, tv := range samples {
			got := p.X.Eval(tv, p.Assigns)

			out, err := expr.Run(program, map[string]any{"t": tv})
			if err != nil {
				t.Fatalf("expr-lang run error on %q: %v", src, err)
			}

			want, ok := out.(float64)
			if !ok {
				t.Fatalf("expr-lang returned %T for %q", out, src)
			}

			if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
				t.Errorf("%s at t=%v: %v, want %v", src, tv, got, want)
			}
		}
	}
}
