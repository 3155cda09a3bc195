package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josh65536/graph-war/graph"
)

func TestCheck_Run_Success(t *testing.T) {
	c := &Check{X: "cos (tau * t)", Y: "sin (tau * t)"}

	if err := c.Run(t.Context()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestCheck_Run_CompileError(t *testing.T) {
	c := &Check{X: "t", Y: "u"}

	err := c.Run(t.Context())
	if err == nil {
		t.Fatal("Run() expected error")
	}

	ce := &graph.CompileError{}
	if !errors.As(err, &ce) {
		t.Fatalf("Run() error = %v, want CompileError in chain", err)
	}

	if ce.Part != graph.PartY {
		t.Errorf("Part = %q, want %q", ce.Part, graph.PartY)
	}

	if !strings.Contains(ce.Message, "unknown variable: u") {
		t.Errorf("Message = %q, want unknown variable", ce.Message)
	}
}

func TestCheck_Run_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.txt")

	content := "x(t) = u\ny(t) = t\nwhere\nu = 2 * t\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c := &Check{File: path}

	if err := c.Run(t.Context()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestCheck_Run_MissingFile(t *testing.T) {
	c := &Check{File: filepath.Join(t.TempDir(), "absent.txt")}

	err := c.Run(t.Context())
	if err == nil {
		t.Fatal("Run() expected error for missing file")
	}

	if !strings.Contains(err.Error(), "open input file") {
		t.Errorf("Run() error = %v, want open input file", err)
	}
}
