package entry

import (
	"slices"
	"testing"
)

func TestWordBounds_ExpressionOperators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "sin", 3, "sin", 0, 3},
		{"after_plus", "t + si", 6, "si", 4, 6},
		{"after_paren", "(si", 3, "si", 1, 3},
		{"after_caret", "t^fra", 5, "fra", 2, 5},
		{"after_floor_div", "t // flo", 8, "flo", 5, 8},
		{"after_equals", "u = ta", 6, "ta", 4, 6},
		{"after_minus", "-sq", 3, "sq", 1, 3},
		{"empty_at_boundary", "t + ", 4, "", 4, 4},
		{"mid_word", "floor", 3, "floor", 0, 5},
		{"at_start", "tau", 0, "tau", 0, 3},
		{"between_operators", "t*u", 2, "u", 2, 3},
		{"digits_in_name", "log10", 5, "log10", 0, 5},
		{"across_newline", "u = 1\nv", 7, "v", 6, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCompletionCandidates(t *testing.T) {
	names := completionCandidates()

	for _, want := range []string{"t", "tau", "pi", "e", "sin", "atan2", "fract"} {
		if !slices.Contains(names, want) {
			t.Errorf("completionCandidates() missing %q", want)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{"prefix_si", "si", "sin", true},
		{"prefix_flo", "flo", "floor", true},
		{"exact", "atan2", "atan2", true},
		{"no_match", "zzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := suggest(tt.query)
			if found != tt.found || got != tt.want {
				t.Errorf("suggest(%q) = (%q, %v), want (%q, %v)",
					tt.query, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestUnknownName(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		want   string
		wantOK bool
	}{
		{"variable", "unknown variable: foo", "foo", true},
		{"unary", "unknown unary function: sine", "sine", true},
		{"binary", "unknown binary function: minimum", "minimum", true},
		{"syntax", "syntax", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := unknownName(tt.msg)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("unknownName(%q) = (%q, %v), want (%q, %v)",
					tt.msg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
