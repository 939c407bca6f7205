package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor's tunable settings. Zero values are filled in
// from Default; a missing config file is not an error.
type Config struct {
	Editor   EditorConfig   `toml:"editor"`
	Viewport ViewportConfig `toml:"viewport"`
	Plugins  PluginsConfig  `toml:"plugins"`
	Log      LogConfig      `toml:"log"`
}

// EditorConfig configures the editor surface and the fallback layout grid.
type EditorConfig struct {
	// Width and Height are the editor bounds in points.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// LineHeight and CharWidth feed the monospaced fallback oracle.
	LineHeight float64 `toml:"line_height"`
	CharWidth  float64 `toml:"char_width"`
}

// ViewportConfig configures the single-line viewport lock.
type ViewportConfig struct {
	// DefaultMode is the edge the lock pins to when a plugin does not
	// specify one: "top" or "bottom".
	DefaultMode string `toml:"default_mode"`

	// CaptureTouches intercepts taps inside the locked line while active.
	CaptureTouches bool `toml:"capture_touches"`
}

// PluginsConfig configures plugin discovery.
type PluginsConfig struct {
	// Dir is the directory scanned for plugins.
	Dir string `toml:"dir"`

	// Disabled lists plugin names that are discovered but never loaded.
	Disabled []string `toml:"disabled"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `toml:"level"`

	// Pretty switches to human-readable console output.
	Pretty bool `toml:"pretty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Width:      640,
			Height:     480,
			LineHeight: 16,
			CharWidth:  8,
		},
		Viewport: ViewportConfig{
			DefaultMode:    "top",
			CaptureTouches: true,
		},
		Plugins: PluginsConfig{
			Dir: defaultPluginDir(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the editor cannot run with.
func (c *Config) Validate() error {
	if c.Editor.Width <= 0 || c.Editor.Height <= 0 {
		return ErrInvalidBounds
	}
	if c.Editor.LineHeight <= 0 || c.Editor.CharWidth <= 0 {
		return ErrInvalidGrid
	}
	switch c.Viewport.DefaultMode {
	case "top", "bottom":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Viewport.DefaultMode)
	}
	return nil
}

// PluginDisabled returns true if the named plugin is on the disabled list.
func (c *Config) PluginDisabled(name string) bool {
	for _, n := range c.Plugins.Disabled {
		if n == name {
			return true
		}
	}
	return false
}

// DefaultPath returns the user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "inkwell.toml"
	}
	return filepath.Join(dir, "inkwell", "config.toml")
}

// defaultPluginDir returns the user plugin directory.
func defaultPluginDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "plugins"
	}
	return filepath.Join(dir, "inkwell", "plugins")
}
