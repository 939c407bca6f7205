package plugin

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/inkwell/internal/editor"
)

func TestManagerLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "alpha.lua"), `
		function activate()
			ink.text.insert("a", 0)
		end
	`)
	writeFile(t, filepath.Join(dir, "beta.lua"), `
		function activate()
			ink.text.insert("b", ink.text.len())
		end
	`)

	s := editor.New()
	m := NewManager(s, zerolog.Nop())
	defer m.CloseAll()

	if err := m.LoadDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 plugins, got %d", m.Len())
	}
	if got := s.Buffer().String(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}

	names := m.Names()
	if names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("unexpected load order %v", names)
	}
}

func TestManagerSkipsBrokenPlugin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.lua"), `not lua at all`)
	writeFile(t, filepath.Join(dir, "good.lua"), `-- fine`)

	m := NewManager(editor.New(), zerolog.Nop())
	defer m.CloseAll()

	if err := m.LoadDir(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 plugin, got %d", m.Len())
	}
	if _, ok := m.Get("good"); !ok {
		t.Error("expected good plugin loaded")
	}
	if _, ok := m.Get("bad"); ok {
		t.Error("expected bad plugin skipped")
	}
}

func TestManagerDuplicateLoad(t *testing.T) {
	s := editor.New()
	m := NewManager(s, zerolog.Nop())
	defer m.CloseAll()

	d := writePlugin(t, "dup", `-- empty`)
	if err := m.Load(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Load(d); !errors.Is(err, ErrAlreadyLoaded) {
		t.Errorf("expected ErrAlreadyLoaded, got %v", err)
	}
}

func TestManagerUnload(t *testing.T) {
	s := editor.New()
	m := NewManager(s, zerolog.Nop())
	defer m.CloseAll()

	if err := m.Load(writePlugin(t, "gone", `-- empty`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Unload("gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected 0 plugins, got %d", m.Len())
	}
	if err := m.Unload("gone"); !errors.Is(err, ErrPluginNotFound) {
		t.Errorf("expected ErrPluginNotFound, got %v", err)
	}
}

func TestManagerCloseAll(t *testing.T) {
	s := editor.New()
	m := NewManager(s, zerolog.Nop())

	if err := m.Load(writePlugin(t, "first", `-- empty`)); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(writePlugin(t, "second", `-- empty`)); err != nil {
		t.Fatal(err)
	}

	m.CloseAll()
	if m.Len() != 0 {
		t.Errorf("expected 0 plugins after close, got %d", m.Len())
	}
}

func TestManagerLoadDirMissing(t *testing.T) {
	m := NewManager(editor.New(), zerolog.Nop())
	if err := m.LoadDir(filepath.Join(t.TempDir(), "nowhere")); err != nil {
		t.Errorf("expected missing dir to be tolerated, got %v", err)
	}
}
