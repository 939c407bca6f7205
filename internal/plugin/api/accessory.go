package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/accessory"
	"github.com/dshills/inkwell/internal/geom"
)

// AccessoryModule implements the ink.accessory API module. Plugins work
// with opaque view IDs; the module owns the backing views for the views it
// creates.
type AccessoryModule struct {
	ctx   *Context
	views map[string]accessory.View
}

// NewAccessoryModule creates a new accessory module.
func NewAccessoryModule(ctx *Context) *AccessoryModule {
	return &AccessoryModule{ctx: ctx, views: make(map[string]accessory.View)}
}

// Name returns the module name.
func (m *AccessoryModule) Name() string {
	return "accessory"
}

// Register registers the module into the Lua state.
func (m *AccessoryModule) Register(L *lua.LState, ns *lua.LTable) {
	mod := L.NewTable()

	L.SetField(mod, "create_view", L.NewFunction(m.createView))
	L.SetField(mod, "frame", L.NewFunction(m.frame))
	L.SetField(mod, "attach_sibling", L.NewFunction(m.attachSibling))
	L.SetField(mod, "attach_floating", L.NewFunction(m.attachFloating))
	L.SetField(mod, "set_top_level", L.NewFunction(m.setTopLevel))
	L.SetField(mod, "detach", L.NewFunction(m.detach))
	L.SetField(mod, "attached", L.NewFunction(m.attached))

	L.SetField(ns, m.Name(), mod)
}

func (m *AccessoryModule) view(L *lua.LState, narg int) (accessory.View, bool) {
	id := L.CheckString(narg)
	v, ok := m.views[id]
	if !ok {
		L.ArgError(narg, "unknown view id")
		return nil, false
	}
	return v, true
}

// create_view(w, h) -> id
// Creates a plugin-owned view and returns its opaque ID.
func (m *AccessoryModule) createView(L *lua.LState) int {
	w := float64(L.CheckNumber(1))
	h := float64(L.CheckNumber(2))
	v := accessory.NewBasicView(geom.NewRect(0, 0, w, h))
	m.views[v.ID()] = v
	L.Push(lua.LString(v.ID()))
	return 1
}

// frame(id) -> rect
func (m *AccessoryModule) frame(L *lua.LState) int {
	v, ok := m.view(L, 1)
	if !ok {
		return 0
	}
	L.Push(rectToLua(L, v.Frame()))
	return 1
}

// attach_sibling(id, x, y)
// Attaches the view as a sibling of the editor at the given origin.
func (m *AccessoryModule) attachSibling(L *lua.LState) int {
	v, ok := m.view(L, 1)
	if !ok {
		return 0
	}
	p := geom.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))}
	m.ctx.Session.Accessory().AttachSibling(v, p)
	return 0
}

// attach_floating(id, x, y)
// Attaches the view free-floating in the top-level view at the given origin.
func (m *AccessoryModule) attachFloating(L *lua.LState) int {
	v, ok := m.view(L, 1)
	if !ok {
		return 0
	}
	p := geom.Point{X: float64(L.CheckNumber(2)), Y: float64(L.CheckNumber(3))}
	m.ctx.Session.Accessory().AttachFreeFloating(v, p)
	return 0
}

// set_top_level(id)
// Designates a plugin-created view as the top-level free-floating host.
func (m *AccessoryModule) setTopLevel(L *lua.LState) int {
	v, ok := m.view(L, 1)
	if !ok {
		return 0
	}
	m.ctx.Session.Accessory().SetTopLevelHost(v)
	return 0
}

// detach(id)
// Detaches the view if it is the current accessory.
func (m *AccessoryModule) detach(L *lua.LState) int {
	v, ok := m.view(L, 1)
	if !ok {
		return 0
	}
	m.ctx.Session.Accessory().Detach(v)
	return 0
}

// attached() -> {view = id, mode = "sibling"|"free-floating"} or nil
func (m *AccessoryModule) attached(L *lua.LState) int {
	att, ok := m.ctx.Session.Accessory().Attached()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	tbl := L.NewTable()
	L.SetField(tbl, "view", lua.LString(att.View.ID()))
	L.SetField(tbl, "mode", lua.LString(att.Mode.String()))
	L.Push(tbl)
	return 1
}

// DetachAll detaches and forgets every view the module created. Called when
// the owning plugin unloads.
func (m *AccessoryModule) DetachAll() {
	for _, v := range m.views {
		m.ctx.Session.Accessory().Detach(v)
	}
	m.views = make(map[string]accessory.View)
}
