package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RenderDefault returns the default configuration rendered as YAML.
//
// The output is a complete, commented-out-free sample suitable for writing
// to the default config location on first run.
func RenderDefault() ([]byte, error) {
	data, err := yaml.Marshal(GetDefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to render default config: %w", err)
	}
	return data, nil
}
