package graph

import (
	"errors"
	"testing"
)

func TestLexAll_Kinds(t *testing.T) {
	toks, err := lexAll("u2 = 1.5e-3 + (t // 2) % 3 ^ 4 / 5 * 6 - 7")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	want := []struct {
		text string
		kind tokenKind
	}{
		{text: "u2", kind: tokenIdent},
		{text: "=", kind: tokenAssign},
		{text: "1.5e-3", kind: tokenNumber},
		{text: "+", kind: tokenOp},
		{text: "(", kind: tokenLParen},
		{text: "t", kind: tokenIdent},
		{text: "//", kind: tokenOp},
		{text: "2", kind: tokenNumber},
		{text: ")", kind: tokenRParen},
		{text: "%", kind: tokenOp},
		{text: "3", kind: tokenNumber},
		{text: "^", kind: tokenOp},
		{text: "4", kind: tokenNumber},
		{text: "/", kind: tokenOp},
		{text: "5", kind: tokenNumber},
		{text: "*", kind: tokenOp},
		{text: "6", kind: tokenNumber},
		{text: "-", kind: tokenOp},
		{text: "7", kind: tokenNumber},
		{text: "", kind: tokenEOF},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, w := range want {
		if toks[i].text != w.text || toks[i].kind != w.kind {
			t.Errorf(
				"token %d = %q (%v), want %q (%v)",
				i, toks[i].text, toks[i].kind, w.text, w.kind,
			)
		}
	}
}

func TestLexAll_Positions(t *testing.T) {
	toks, err := lexAll("u = 1\n  v = 22")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	want := []struct {
		line int
		col  int
	}{
		{line: 1, col: 1}, // u
		{line: 1, col: 3}, // =
		{line: 1, col: 5}, // 1
		{line: 2, col: 3}, // v
		{line: 2, col: 5}, // =
		{line: 2, col: 7}, // 22
		{line: 2, col: 9}, // EOF
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}

	for i, w := range want {
		if toks[i].line != w.line || toks[i].col != w.col {
			t.Errorf(
				"token %d at %d:%d, want %d:%d",
				i, toks[i].line, toks[i].col, w.line, w.col,
			)
		}
	}
}

func TestLexAll_DigitsInIdentifiers(t *testing.T) {
	for _, name := range []string{"log2", "log10", "atan2"} {
		toks, err := lexAll(name)
		if err != nil {
			t.Fatalf("lex error on %q: %v", name, err)
		}

		if len(toks) != 2 || toks[0].kind != tokenIdent || toks[0].text != name {
			t.Errorf("%q did not lex as a single identifier: %v", name, toks)
		}
	}
}

func TestLexAll_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		col  int
	}{
		{name: "invalid character", src: "2 $ 2", line: 1, col: 3},
		{name: "lone dot", src: ".", line: 1, col: 1},
		{name: "missing exponent digits", src: "1e", line: 1, col: 1},
		{name: "invalid character on second line", src: "u = 1\n@", line: 2, col: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexAll(tt.src)
			if err == nil {
				t.Fatal("expected lex error")
			}

			if !errors.Is(err, ErrSyntax) {
				t.Errorf("error does not wrap ErrSyntax: %v", err)
			}

			loc := &located{}
			if !errors.As(err, &loc) {
				t.Fatalf("error carries no position: %v", err)
			}

			if loc.line != tt.line || loc.col != tt.col {
				t.Errorf(
					"position = %d:%d, want %d:%d",
					loc.line, loc.col, tt.line, tt.col,
				)
			}
		})
	}
}
