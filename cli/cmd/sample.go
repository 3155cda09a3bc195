package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/josh65536/graph-war/graph"
	"github.com/josh65536/graph-war/log"
)

// Sample compiles a curve submission and prints evenly spaced samples of
// the curve over t in [0, 1].
type Sample struct {
	X      string `arg:"" help:"x(t) expression" optional:""`
	Y      string `arg:"" help:"y(t) expression" optional:""`
	Where  string `       help:"Auxiliary assignments (name = expression)"  short:"w"`
	File   string `       help:"Read submission from file or '-' for stdin" short:"f"`
	Count  int    `       help:"Number of sample segments"                  short:"n" default:"100"`
	Format string `       help:"Output format"                                        default:"csv" enum:"csv,json,yaml"`
}

// Run executes the sample command.
func (s *Sample) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sub := Submission{X: s.X, Y: s.Y, Where: s.Where}
	if s.File != "" {
		sub, err = readSubmissionFile(s.File)
		if err != nil {
			return err
		}
	}

	p, err := graph.Compile(
		sub.X, sub.Y, sub.Where,
		graph.WithLogger(log.Default()),
	)
	if err != nil {
		ce := &graph.CompileError{}
		if errors.As(err, &ce) {
			return ErrCompile.Wrap(err).
				With(slog.Any("error", ce))
		}

		return ErrCompile.Wrap(err)
	}

	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	return writePoints(out, p.Points(s.Count), s.Format)
}

// writePoints renders sampled points in the requested format.
func writePoints(w io.Writer, pts []graph.Point, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		err := enc.Encode(pts)
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		return nil

	case "yaml":
		buf, err := yaml.Marshal(pts)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(buf)

		return err

	default:
		fmt.Fprintln(w, "t,x,y")

		for _, pt := range pts {
			fmt.Fprintf(
				w, "%s,%s,%s\n",
				formatFloat(pt.T), formatFloat(pt.X), formatFloat(pt.Y),
			)
		}

		return nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
