package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the on-disk form of an animation catalog override.
type CatalogFile struct {
	Baseline   string                  `yaml:"baseline"`
	Animations map[string]AnimationDef `yaml:"animations"`
}

// LoadCatalogFile reads a YAML catalog. Entries replace built-in ones of the
// same name; everything else in the built-in catalog is kept.
func LoadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*CatalogFile, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal: %w", err)
	}
	return &cf, nil
}

// Merge returns base overlaid with the file's entries, and the baseline to use.
func (cf *CatalogFile) Merge(base map[string]AnimationDef, baseline string) (map[string]AnimationDef, string) {
	out := make(map[string]AnimationDef, len(base)+len(cf.Animations))
	for name, def := range base {
		out[name] = def
	}
	for name, def := range cf.Animations {
		out[name] = def
	}
	if cf.Baseline != "" {
		baseline = cf.Baseline
	}
	return out, baseline
}
