package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/geom"
	"github.com/dshills/inkwell/internal/viewport"
)

// ViewportModule implements the ink.viewport API module: the single-line
// viewport lock.
type ViewportModule struct {
	ctx *Context
}

// NewViewportModule creates a new viewport module.
func NewViewportModule(ctx *Context) *ViewportModule {
	return &ViewportModule{ctx: ctx}
}

// Name returns the module name.
func (m *ViewportModule) Name() string {
	return "viewport"
}

// Register registers the module into the Lua state.
func (m *ViewportModule) Register(L *lua.LState, ns *lua.LTable) {
	mod := L.NewTable()

	L.SetField(mod, "enter", L.NewFunction(m.enter))
	L.SetField(mod, "exit", L.NewFunction(m.exit))
	L.SetField(mod, "rect", L.NewFunction(m.rect))
	L.SetField(mod, "active", L.NewFunction(m.active))

	L.SetField(ns, m.Name(), mod)
}

func parseMode(L *lua.LState, narg int) (viewport.Mode, bool) {
	switch L.CheckString(narg) {
	case "top":
		return viewport.ModeTop, true
	case "bottom":
		return viewport.ModeBottom, true
	default:
		L.ArgError(narg, `mode must be "top" or "bottom"`)
		return 0, false
	}
}

func rectToLua(L *lua.LState, r geom.Rect) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "x", lua.LNumber(r.X))
	L.SetField(tbl, "y", lua.LNumber(r.Y))
	L.SetField(tbl, "w", lua.LNumber(r.W))
	L.SetField(tbl, "h", lua.LNumber(r.H))
	return tbl
}

// enter(mode, capture_touches?) -> rect
// Engages the viewport lock pinned to the given edge.
func (m *ViewportModule) enter(L *lua.LState) int {
	mode, ok := parseMode(L, 1)
	if !ok {
		return 0
	}
	capture := L.OptBool(2, false)
	rect := m.ctx.Session.EnterViewport(mode, capture)
	L.Push(rectToLua(L, rect))
	return 1
}

// exit()
// Disengages the lock and restores the saved selection and scroll state.
func (m *ViewportModule) exit(L *lua.LState) int {
	m.ctx.Session.ExitViewport()
	return 0
}

// rect(mode) -> rect
// Computes the viewport rectangle for a mode without changing state.
func (m *ViewportModule) rect(L *lua.LState) int {
	mode, ok := parseMode(L, 1)
	if !ok {
		return 0
	}
	L.Push(rectToLua(L, m.ctx.Session.Viewport().RectForMode(mode)))
	return 1
}

// active() -> mode or nil
// Returns the active mode name, or nil when the lock is disengaged.
func (m *ViewportModule) active(L *lua.LState) int {
	mode, ok := m.ctx.Session.Viewport().Mode()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(mode.String()))
	return 1
}
