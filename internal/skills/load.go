package skills

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML shape of a dictionary.
type File struct {
	Skills []Entry `yaml:"skills"`
}

// LoadFile reads a YAML dictionary from path.
func LoadFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dictionary %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if len(f.Skills) == 0 {
		return nil, fmt.Errorf("dictionary %s defines no skills", path)
	}
	d, err := New(f.Skills)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary %s: %w", path, err)
	}
	return d, nil
}

// Save writes d to path as YAML.
func Save(path string, d *Dictionary) error {
	data, err := yaml.Marshal(File{Skills: d.Entries()})
	if err != nil {
		return fmt.Errorf("cannot marshal dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write dictionary %s: %w", path, err)
	}
	return nil
}
