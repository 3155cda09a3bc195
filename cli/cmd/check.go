package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/josh65536/graph-war/graph"
	"github.com/josh65536/graph-war/log"
	"github.com/josh65536/graph-war/pkg"
)

// Check compiles a curve submission and reports the status line without
// evaluating anything.
type Check struct {
	X     string `arg:"" help:"x(t) expression" optional:""`
	Y     string `arg:"" help:"y(t) expression" optional:""`
	Where string `       help:"Auxiliary assignments (name = expression)"  short:"w"`
	File  string `       help:"Read submission from file or '-' for stdin" short:"f"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sub, err := c.submission()
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	_, err = graph.Compile(
		sub.X, sub.Y, sub.Where,
		graph.WithLogger(log.Default()),
	)
	if err != nil {
		ce := &graph.CompileError{}
		if errors.As(err, &ce) {
			fmt.Fprintln(out, ce.Status())

			return ErrCompile.Wrap(err).
				With(slog.Any("error", ce))
		}

		return ErrCompile.Wrap(err)
	}

	fmt.Fprintln(out, graph.StatusSuccess)

	return nil
}

// submission resolves the command's inputs, preferring an input file
// over the positional expressions.
func (c *Check) submission() (Submission, error) {
	if c.File == "" {
		return Submission{X: c.X, Y: c.Y, Where: c.Where}, nil
	}

	return readSubmissionFile(c.File)
}

// readSubmissionFile reads a submission from path, or from stdin when
// path is "-".
func readSubmissionFile(path string) (Submission, error) {
	if path == "-" {
		sub, err := ReadSubmission(os.Stdin)
		if err != nil {
			return sub, pkg.ErrReadStdin.Wrap(err)
		}

		return sub, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Submission{}, ErrOpenInput.Wrap(err).
			With(slog.String("path", path))
	}
	defer file.Close()

	return ReadSubmission(file)
}
