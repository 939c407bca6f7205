package plugin

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultEntryPoint is the script a directory plugin runs when the
// manifest names none.
const DefaultEntryPoint = "init.lua"

// Manifest describes a plugin. Directory plugins carry it as plugin.json;
// single-file plugins get a synthesized one.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Main        string `json:"main,omitempty"`
}

// LoadManifest reads and validates a plugin.json file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields and applies defaults.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return ErrInvalidName
	}
	if m.Main == "" {
		m.Main = DefaultEntryPoint
	}
	return nil
}
