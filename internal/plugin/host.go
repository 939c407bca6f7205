package plugin

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/editor"
	"github.com/dshills/inkwell/internal/plugin/api"
)

// Host manages a single plugin's Lua state and lifecycle. A Host is used
// from the owning editor thread; it carries no lock of its own.
type Host struct {
	id       string
	name     string
	manifest *Manifest
	entry    string

	session *editor.Session
	log     zerolog.Logger

	state *lua.LState
	set   *api.Set

	pluginState State
	err         error
}

// NewHost creates a plugin host for a discovered plugin.
func NewHost(d Discovered, session *editor.Session, log zerolog.Logger) (*Host, error) {
	if d.Manifest == nil {
		return nil, ErrNilManifest
	}
	if err := d.Manifest.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Host{
		id:          id,
		name:        d.Manifest.Name,
		manifest:    d.Manifest,
		entry:       d.Entry,
		session:     session,
		log:         log.With().Str("plugin", d.Manifest.Name).Str("instance", id).Logger(),
		pluginState: StateUnloaded,
	}, nil
}

// ID returns the host's unique instance ID.
func (h *Host) ID() string {
	return h.id
}

// Name returns the plugin name.
func (h *Host) Name() string {
	return h.name
}

// Manifest returns the plugin manifest.
func (h *Host) Manifest() *Manifest {
	return h.manifest
}

// State returns the current plugin state.
func (h *Host) State() State {
	return h.pluginState
}

// Error returns the error that moved the plugin into StateError, if any.
func (h *Host) Error() error {
	return h.err
}

// Load creates the Lua state, installs the ink API, and runs the plugin
// script.
func (h *Host) Load() error {
	if h.pluginState != StateUnloaded {
		return ErrAlreadyLoaded
	}

	L := lua.NewState()
	h.state = L
	h.set = api.Install(L, &api.Context{Session: h.session, Log: h.log})

	if err := L.DoFile(h.entry); err != nil {
		L.Close()
		h.state = nil
		h.set = nil
		h.pluginState = StateError
		h.err = fmt.Errorf("load plugin %s: %w", h.name, err)
		return h.err
	}

	h.pluginState = StateLoaded
	h.log.Debug().Str("entry", h.entry).Msg("plugin loaded")
	return nil
}

// Activate calls the plugin's activate() function if it defines one.
func (h *Host) Activate() error {
	if h.pluginState != StateLoaded {
		return ErrNotLoaded
	}

	if err := h.callGlobal("activate"); err != nil {
		h.pluginState = StateError
		h.err = err
		return err
	}

	h.pluginState = StateActive
	h.log.Debug().Msg("plugin activated")
	return nil
}

// Deactivate calls the plugin's deactivate() function if it defines one
// and releases the resources the plugin acquired through the API.
func (h *Host) Deactivate() error {
	if h.pluginState != StateActive {
		return nil
	}

	err := h.callGlobal("deactivate")
	h.set.Release()
	h.pluginState = StateLoaded
	if err != nil {
		h.log.Error().Err(err).Msg("deactivate failed")
		return err
	}
	h.log.Debug().Msg("plugin deactivated")
	return nil
}

// Close deactivates the plugin if needed and releases its Lua state. A
// closed host cannot be reloaded.
func (h *Host) Close() {
	if h.pluginState == StateClosed {
		return
	}
	if h.pluginState == StateActive {
		_ = h.Deactivate()
	}
	if h.state != nil {
		h.state.Close()
		h.state = nil
		h.set = nil
	}
	h.pluginState = StateClosed
}

// callGlobal calls a top-level Lua function by name. An absent global or a
// non-function value is not an error.
func (h *Host) callGlobal(name string) error {
	fn, ok := h.state.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil
	}
	if err := h.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("plugin %s: %s: %w", h.name, name, err)
	}
	return nil
}
