package config

import (
	"fmt"
	"os"
)

// LoadSearchSpec loads and parses a search spec file.
func LoadSearchSpec(path string) (*SearchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read search spec file %s: %w", path, err)
	}
	spec, err := ParseSearchSpecYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search spec file %s: %w", path, err)
	}
	return spec, nil
}
