package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadDefinition reads a machine definition file. YAML is a superset
// of JSON, so .json, .yaml and .yml files all go through the same
// decoder and come out as the untyped map the compiler expects.
func loadDefinition(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition %s: %w", path, err)
	}
	return raw, nil
}
