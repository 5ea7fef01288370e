package commands

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// readOptionsFile reads a YAML or JSON file mapping option names to scalar
// values. A null value is passed on as the string "null".
func readOptionsFile(path string) (map[string]string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read options")
	}
	var raw map[string]any
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse options %s", path)
	}
	opts := make(map[string]string, len(raw))
	for name, v := range raw {
		switch v := v.(type) {
		case nil:
			opts[name] = "null"
		case string:
			opts[name] = v
		case bool, int, int64, uint64, float64:
			opts[name] = fmt.Sprint(v)
		default:
			return nil, errors.Newf("parse options %s: option %q must be a scalar value", path, name)
		}
	}
	return opts, nil
}

// parseSet parses repeated key=value flags.
func parseSet(values []string) (map[string]string, error) {
	opts := make(map[string]string, len(values))
	for _, kv := range values {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, errors.WithHint(
				errors.Newf("invalid --set value %q", kv),
				"use --set name=value, for example --set modelType=type")
		}
		opts[strings.TrimSpace(name)] = value
	}
	return opts, nil
}

// optionMap merges the options file, if any, with --set values. Values
// from --set win.
func optionMap(configPath string, set []string) (map[string]string, error) {
	opts := make(map[string]string)
	if configPath != "" {
		file, err := readOptionsFile(configPath)
		if err != nil {
			return nil, err
		}
		maps.Copy(opts, file)
	}
	flags, err := parseSet(set)
	if err != nil {
		return nil, err
	}
	maps.Copy(opts, flags)
	return opts, nil
}
