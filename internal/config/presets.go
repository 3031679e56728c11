package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"techindex/domain/index"
	"techindex/internal/errors"
)

// presetsFile is the on-disk shape of a weight preset file:
//
//	default: balanced
//	presets:
//	  balanced:
//	    ai: 0.5
//	    quantum: 0.5
//	    ...
type presetsFile struct {
	Default string                        `yaml:"default"`
	Presets map[string]map[string]float64 `yaml:"presets"`
}

// Presets holds named weight sets loaded from a yaml file.
type Presets struct {
	Default string
	Sets    map[string]index.Weights
}

// Get returns the named preset, falling back to the file's default when
// name is empty.
func (p *Presets) Get(name string) (index.Weights, error) {
	if name == "" {
		name = p.Default
	}
	w, ok := p.Sets[name]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("weight preset %q", name))
	}
	return w.Clone(), nil
}

// LoadPresets reads and validates a yaml weight preset file. Every preset
// must use only the six known sector keys and carry valid weights.
func LoadPresets(path string) (*Presets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read weights file %s", path)
	}

	var file presetsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse weights file")
	}
	if len(file.Presets) == 0 {
		return nil, errors.ConfigInvalid("weights file defines no presets")
	}

	known := make(map[string]index.Sector, 6)
	for _, sector := range index.Sectors() {
		known[string(sector)] = sector
	}

	sets := make(map[string]index.Weights, len(file.Presets))
	for name, entries := range file.Presets {
		weights := make(index.Weights, len(entries))
		for key, value := range entries {
			sector, ok := known[key]
			if !ok {
				return nil, errors.ConfigInvalid(
					fmt.Sprintf("preset %q uses unknown sector key %q", name, key))
			}
			weights[sector] = value
		}
		if err := weights.Validate(); err != nil {
			return nil, errors.Wrapf(err, "preset %q is invalid", name)
		}
		sets[name] = weights
	}

	if file.Default != "" {
		if _, ok := sets[file.Default]; !ok {
			return nil, errors.ConfigInvalid(
				fmt.Sprintf("default preset %q is not defined", file.Default))
		}
	}

	return &Presets{Default: file.Default, Sets: sets}, nil
}
