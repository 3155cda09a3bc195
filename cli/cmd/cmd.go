package cmd

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/josh65536/graph-war/pkg"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Submission is one complete set of curve inputs: the two coordinate
// expressions and the auxiliary assignment clause.
type Submission struct {
	X     string
	Y     string
	Where string
}

// Line prefixes recognized by ReadSubmission. They mirror the labels the
// entry form displays, so a saved form can be read back verbatim.
const (
	prefixX     = "x(t)"
	prefixY     = "y(t)"
	prefixWhere = "where"
)

// ReadSubmission parses a curve submission from r. The format is the one
// shown by the syntax help: an x(t) line, a y(t) line, and an optional
// where section holding assignments.
//
//	x(t) = -2 * t
//	y(t) = sin(3 * t)
//	where
//	      u = 2 * t - 4
//
// The "x(t) =" and "y(t) =" labels may be omitted, in which case the
// first two non-blank lines are taken as the coordinate expressions.
// Everything after the second expression is the where clause, passed
// through uncompiled for the caller to compile. A leading "where"
// keyword line is consumed and not part of the clause.
func ReadSubmission(r io.Reader) (Submission, error) {
	var sub Submission

	scanner := bufio.NewScanner(r)
	seen := 0

	for scanner.Scan() {
		line := scanner.Text()

		if seen < 2 && strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case seen >= 3:
			sub.Where += line + "\n"

		case seen == 2:
			seen = 3

			if strings.TrimSpace(line) != prefixWhere {
				sub.Where += line + "\n"
			}

		default:
			expr := stripLabel(line, prefixX, prefixY)

			if seen == 0 {
				sub.X = expr
			} else {
				sub.Y = expr
			}

			seen++
		}
	}

	if err := scanner.Err(); err != nil {
		return sub, pkg.ErrReadInput.Wrap(err)
	}

	return sub, nil
}

// stripLabel removes a leading "x(t) =" or "y(t) =" label if present.
func stripLabel(line string, labels ...string) string {
	trimmed := strings.TrimSpace(line)

	for _, label := range labels {
		rest, ok := strings.CutPrefix(trimmed, label)
		if !ok {
			continue
		}

		rest = strings.TrimLeft(rest, " \t")
		if expr, ok := strings.CutPrefix(rest, "="); ok {
			return strings.TrimSpace(expr)
		}
	}

	return trimmed
}
