package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discovered is a plugin found on disk but not yet loaded.
type Discovered struct {
	Manifest *Manifest
	// Entry is the absolute path of the script to run.
	Entry string
}

// Discover scans a directory for plugins. A plugin is either a *.lua file
// directly in the directory, or a subdirectory containing an entry script
// (with an optional plugin.json manifest). A missing directory yields no
// plugins and no error.
func Discover(dir string) ([]Discovered, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan plugin dir: %w", err)
	}

	var found []Discovered
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if !entry.IsDir() {
			if !strings.HasSuffix(entry.Name(), ".lua") {
				continue
			}
			found = append(found, Discovered{
				Manifest: &Manifest{
					Name: strings.TrimSuffix(entry.Name(), ".lua"),
					Main: entry.Name(),
				},
				Entry: path,
			})
			continue
		}

		d, err := discoverDir(path, entry.Name())
		if err != nil {
			return nil, err
		}
		if d != nil {
			found = append(found, *d)
		}
	}
	return found, nil
}

// discoverDir resolves a directory plugin, returning nil if the directory
// holds no entry script.
func discoverDir(dir, name string) (*Discovered, error) {
	manifest := &Manifest{Name: name, Main: DefaultEntryPoint}

	manifestPath := filepath.Join(dir, "plugin.json")
	if _, err := os.Stat(manifestPath); err == nil {
		m, err := LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		manifest = m
	}

	entry := filepath.Join(dir, manifest.Main)
	if _, err := os.Stat(entry); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", manifest.Name, ErrEntryNotFound)
	}
	return &Discovered{Manifest: manifest, Entry: entry}, nil
}
