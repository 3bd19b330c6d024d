package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a theme from a YAML file. The file holds a plain token
// tree, optionally including a colorSchemes table:
//
//	colors:
//	  text: "#1f2328"
//	colorSchemes:
//	  dark:
//	    colors:
//	      text: "#f0f6fc"
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into a Theme.
func Parse(data []byte) (Theme, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return Theme(raw), nil
}
