package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML catalog data. Tables missing from the document are left
// empty; Validate reports them.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	if len(c.MobilityTypes) == 0 {
		c.MobilityTypes = Default().MobilityTypes
	}

	return &c, nil
}
