package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("expected defaults for missing file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[editor]
width = 800.0
height = 600.0

[viewport]
default_mode = "bottom"
capture_touches = false

[log]
level = "debug"
pretty = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor.Width != 800 || cfg.Editor.Height != 600 {
		t.Errorf("unexpected bounds %v x %v", cfg.Editor.Width, cfg.Editor.Height)
	}
	if cfg.Editor.LineHeight != 16 {
		t.Errorf("expected default line height 16, got %v", cfg.Editor.LineHeight)
	}
	if cfg.Viewport.DefaultMode != "bottom" {
		t.Errorf("expected mode %q, got %q", "bottom", cfg.Viewport.DefaultMode)
	}
	if cfg.Viewport.CaptureTouches {
		t.Error("expected capture_touches false")
	}
	if cfg.Log.Level != "debug" || !cfg.Log.Pretty {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor\nwidth="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Editor.Width = 0 }, ErrInvalidBounds},
		{"negative height", func(c *Config) { c.Editor.Height = -1 }, ErrInvalidBounds},
		{"zero line height", func(c *Config) { c.Editor.LineHeight = 0 }, ErrInvalidGrid},
		{"bad mode", func(c *Config) { c.Viewport.DefaultMode = "left" }, ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPluginDisabled(t *testing.T) {
	cfg := Default()
	cfg.Plugins.Disabled = []string{"mentions"}

	if !cfg.PluginDisabled("mentions") {
		t.Error("expected mentions disabled")
	}
	if cfg.PluginDisabled("hashtags") {
		t.Error("expected hashtags enabled")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`[log]`+"\n"+`level = "info"`), 0o644); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	var got *Config
	w, err := NewWatcher(path, func(cfg Config) {
		mu.Lock()
		got = &cfg
		mu.Unlock()
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`[log]`+"\n"+`level = "debug"`), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		done := got != nil
		mu.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		case <-time.After(10 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if got.Log.Level != "debug" {
		t.Errorf("expected level %q, got %q", "debug", got.Log.Level)
	}
}
