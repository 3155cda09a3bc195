package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/josh65536/graph-war/graph"
)

// Syntax prints a quick reference for the expression language.
type Syntax struct{}

// Run executes the syntax command.
func (s *Syntax) Run(ctx context.Context) error {
	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	fmt.Fprintln(out, graph.QuickHelp)

	return nil
}
