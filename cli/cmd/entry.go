package cmd

import (
	"context"

	"github.com/josh65536/graph-war/cli/cmd/entry"
	"github.com/josh65536/graph-war/log"
)

// Entry opens the interactive curve entry form.
type Entry struct {
	Cache string `default:"${cache}" help:"Cache directory for entry state" type:"path"`
}

// Run executes the entry command.
func (e *Entry) Run(ctx context.Context) error {
	return entry.Run(ctx, e.Cache, log.Default())
}
