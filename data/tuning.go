package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ebiten-outrun/config"
)

// LoadTuning reads a tuning file (.json, .yaml or .yml). Fields missing from
// the file keep their default values. The result is validated.
func LoadTuning(path string) (config.Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return config.Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	tuning, err := ParseTuning(raw, filepath.Ext(path))
	if err != nil {
		return config.Tuning{}, fmt.Errorf("failed to load tuning from %s: %w", filepath.Base(path), err)
	}
	return tuning, nil
}

// ParseTuning decodes raw tuning data of the given format, named by its file
// extension, over the defaults
func ParseTuning(raw []byte, ext string) (config.Tuning, error) {
	tuning := config.DefaultTuning()

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(raw, &tuning); err != nil {
			return config.Tuning{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &tuning); err != nil {
			return config.Tuning{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return config.Tuning{}, fmt.Errorf("unsupported tuning format %q", ext)
	}

	if err := tuning.Validate(); err != nil {
		return config.Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return tuning, nil
}
