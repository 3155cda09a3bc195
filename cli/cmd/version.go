package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josh65536/graph-war/pkg"
)

// Version prints the program name and version.
type Version struct{}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	out := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		out = ktx.Stdout
	}

	fmt.Fprintln(out, pkg.Name, strings.TrimSpace(pkg.Version))

	return nil
}
