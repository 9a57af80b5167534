package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Load parses and validates the embedded default catalogue.
func Load() (*Catalog, error) {
	return parse(defaultCatalogYAML, "embedded catalog.yaml")
}

// LoadFile parses and validates an alternate catalogue from disk. Alternate
// catalogues are full replacements, not overlays: the file must carry every
// section (taxonomy, items, signatures, thresholds, labels).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue %s: %w", source, err)
	}
	c.buildIndexes()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalogue %s: %w", source, err)
	}
	return &c, nil
}
