package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - When a top-level mapping named after the given identifier exists, its
//     entries become the configuration map; otherwise the whole document is
//     used
//   - Flag names with hyphens (e.g., "log-level") may use underscores in the
//     config file (e.g., "log_level")
//   - Numbers are converted to strings for Kong's flag parsing
//
// Example config file:
//
//	config:
//	  log_level: debug
//	  log_format: json
//	  log_pretty: true
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--log-pretty=true
//
// Command-line flags override config file values.
func resolve(name string) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var doc map[string]any

		if err := yaml.Unmarshal(buf, &doc); err != nil {
			// Parse error - return empty config
			return config{}, nil
		}

		// Prefer the named top-level section when present.
		if section, ok := doc[name].(map[string]any); ok {
			doc = section
		}

		return config(flattenValues(doc)), nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	// Look up the value in our config
	if value, ok := r[name]; ok {
		return value, nil
	}

	// Try underscore variant
	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flattenValues converts scalar values into the representation Kong expects.
func flattenValues(doc map[string]any) map[string]any {
	result := make(map[string]any, len(doc))

	for key, value := range doc {
		// Kong requires numbers as strings for parsing
		switch num := value.(type) {
		case int64:
			result[key] = strconv.FormatInt(num, 10)
		case uint64:
			result[key] = strconv.FormatUint(num, 10)
		case float64:
			result[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			result[key] = value
		}
	}

	return result
}
