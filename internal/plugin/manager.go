package plugin

import (
	"github.com/rs/zerolog"

	"github.com/dshills/inkwell/internal/editor"
)

// Manager owns the plugin hosts attached to one editor session. Plugins
// load in discovery order; a plugin that fails to load or activate is
// skipped with a logged error and never aborts the rest.
type Manager struct {
	session *editor.Session
	log     zerolog.Logger

	plugins   map[string]*Host
	loadOrder []string
}

// NewManager creates an empty plugin manager for a session.
func NewManager(session *editor.Session, log zerolog.Logger) *Manager {
	return &Manager{
		session: session,
		log:     log,
		plugins: make(map[string]*Host),
	}
}

// LoadDir discovers and loads every plugin under dir, activating each as
// it loads. A missing directory is not an error.
func (m *Manager) LoadDir(dir string) error {
	found, err := Discover(dir)
	if err != nil {
		return err
	}
	for _, d := range found {
		if err := m.Load(d); err != nil {
			m.log.Error().Err(err).Str("plugin", d.Manifest.Name).Msg("plugin load failed")
		}
	}
	return nil
}

// Load loads and activates a discovered plugin.
func (m *Manager) Load(d Discovered) error {
	if d.Manifest != nil {
		if _, ok := m.plugins[d.Manifest.Name]; ok {
			return ErrAlreadyLoaded
		}
	}

	h, err := NewHost(d, m.session, m.log)
	if err != nil {
		return err
	}
	if err := h.Load(); err != nil {
		return err
	}
	if err := h.Activate(); err != nil {
		h.Close()
		return err
	}

	m.plugins[h.Name()] = h
	m.loadOrder = append(m.loadOrder, h.Name())
	m.log.Info().Str("plugin", h.Name()).Str("version", h.Manifest().Version).Msg("plugin active")
	return nil
}

// Get returns a loaded plugin host by name.
func (m *Manager) Get(name string) (*Host, bool) {
	h, ok := m.plugins[name]
	return h, ok
}

// Names returns the loaded plugin names in load order.
func (m *Manager) Names() []string {
	out := make([]string, len(m.loadOrder))
	copy(out, m.loadOrder)
	return out
}

// Len returns the number of loaded plugins.
func (m *Manager) Len() int {
	return len(m.loadOrder)
}

// Unload deactivates and closes one plugin.
func (m *Manager) Unload(name string) error {
	h, ok := m.plugins[name]
	if !ok {
		return ErrPluginNotFound
	}
	h.Close()
	delete(m.plugins, name)
	for i, n := range m.loadOrder {
		if n == name {
			m.loadOrder = append(m.loadOrder[:i], m.loadOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CloseAll closes every plugin in reverse load order.
func (m *Manager) CloseAll() {
	for i := len(m.loadOrder) - 1; i >= 0; i-- {
		m.plugins[m.loadOrder[i]].Close()
	}
	m.plugins = make(map[string]*Host)
	m.loadOrder = nil
}
