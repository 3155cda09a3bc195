package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve_ReturnsCorrectConfig(t *testing.T) {
	config := `
config:
  log_level: debug
  log_format: text
other:
  foo: bar
`

	loader := resolve("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	mockFlag := &kong.Flag{Value: &kong.Value{Name: "log_level"}}

	val, err := resolver.Resolve(nil, nil, mockFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val != "debug" {
		t.Errorf("expected log_level=debug, got %v", val)
	}

	mockFlag2 := &kong.Flag{Value: &kong.Value{Name: "log_format"}}

	val2, err := resolver.Resolve(nil, nil, mockFlag2)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val2 != "text" {
		t.Errorf("expected log_format=text, got %v", val2)
	}

	// Values outside the named section are not included.
	mockFlag3 := &kong.Flag{Value: &kong.Value{Name: "foo"}}

	val3, err := resolver.Resolve(nil, nil, mockFlag3)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val3 != nil {
		t.Error("config should not contain 'foo' from 'other' section")
	}
}

func TestResolve_FlatDocument(t *testing.T) {
	config := `
log_level: warn
log_pretty: false
`

	loader := resolve("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	// Without a named section, the whole document is the config.
	mockFlag := &kong.Flag{Value: &kong.Value{Name: "log-level"}}

	val, err := resolver.Resolve(nil, nil, mockFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val != "warn" {
		t.Errorf("expected log-level=warn, got %v", val)
	}
}

func TestResolve_InvalidYAML(t *testing.T) {
	loader := resolve("config")

	resolver, err := loader(strings.NewReader("{ [ not yaml"))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	mockFlag := &kong.Flag{Value: &kong.Value{Name: "log-level"}}

	val, err := resolver.Resolve(nil, nil, mockFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val != nil {
		t.Error("expected nil value for invalid config")
	}
}

func TestResolve_UnderscoreHyphenMapping(t *testing.T) {
	config := "config:\n  log_level: debug\n"

	loader := resolve("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	// Test underscore version (as stored in config)
	mockFlag := &kong.Flag{Value: &kong.Value{Name: "log_level"}}

	val, err := resolver.Resolve(nil, nil, mockFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val != "debug" {
		t.Errorf("expected log_level=debug, got %v", val)
	}

	// Test hyphen version (should also work via underscore mapping)
	mockFlag2 := &kong.Flag{Value: &kong.Value{Name: "log-level"}}

	val2, err := resolver.Resolve(nil, nil, mockFlag2)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val2 != "debug" {
		t.Errorf("expected log-level=debug, got %v", val2)
	}
}

func TestResolve_NumberConversion(t *testing.T) {
	config := "config:\n  count: 42\n  scale: 1.5\n"

	loader := resolve("config")

	resolver, err := loader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("loader failed: %v", err)
	}

	mockFlag := &kong.Flag{Value: &kong.Value{Name: "count"}}

	val, err := resolver.Resolve(nil, nil, mockFlag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val != "42" {
		t.Errorf("expected count=%q, got %v (%T)", "42", val, val)
	}

	mockFlag2 := &kong.Flag{Value: &kong.Value{Name: "scale"}}

	val2, err := resolver.Resolve(nil, nil, mockFlag2)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if val2 != "1.5" {
		t.Errorf("expected scale=%q, got %v (%T)", "1.5", val2, val2)
	}
}
