package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/josh65536/graph-war/graph"
)

var samplePoints = []graph.Point{
	{T: 0, X: 0, Y: 1},
	{T: 0.5, X: 2.5, Y: 0},
	{T: 1, X: 5, Y: -1},
}

func TestWritePoints_CSV(t *testing.T) {
	var buf bytes.Buffer

	if err := writePoints(&buf, samplePoints, "csv"); err != nil {
		t.Fatalf("writePoints() error = %v", err)
	}

	want := "t,x,y\n0,0,1\n0.5,2.5,0\n1,5,-1\n"
	if got := buf.String(); got != want {
		t.Errorf("writePoints() = %q, want %q", got, want)
	}
}

func TestWritePoints_JSON(t *testing.T) {
	var buf bytes.Buffer

	if err := writePoints(&buf, samplePoints, "json"); err != nil {
		t.Fatalf("writePoints() error = %v", err)
	}

	var got []graph.Point
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(got) != len(samplePoints) {
		t.Fatalf("decoded %d points, want %d", len(got), len(samplePoints))
	}

	for i, pt := range got {
		if pt != samplePoints[i] {
			t.Errorf("point %d = %+v, want %+v", i, pt, samplePoints[i])
		}
	}
}

func TestWritePoints_YAML(t *testing.T) {
	var buf bytes.Buffer

	if err := writePoints(&buf, samplePoints, "yaml"); err != nil {
		t.Fatalf("writePoints() error = %v", err)
	}

	var got []graph.Point
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}

	if len(got) != len(samplePoints) {
		t.Fatalf("decoded %d points, want %d", len(got), len(samplePoints))
	}

	for i, pt := range got {
		if pt != samplePoints[i] {
			t.Errorf("point %d = %+v, want %+v", i, pt, samplePoints[i])
		}
	}
}

func TestSample_Run_Compiles(t *testing.T) {
	s := &Sample{X: "t", Y: "t^2", Count: 2, Format: "csv"}

	if err := s.Run(t.Context()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestSample_Run_CompileError(t *testing.T) {
	s := &Sample{X: "t +", Y: "t", Count: 2, Format: "csv"}

	err := s.Run(t.Context())
	if err == nil {
		t.Fatal("Run() expected error")
	}

	if !strings.Contains(err.Error(), "syntax") {
		t.Errorf("Run() error = %v, want syntax error", err)
	}
}
