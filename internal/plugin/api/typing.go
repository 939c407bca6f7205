package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/engine/attrtext"
)

// TypingModule implements the ink.typing API module: the activation stack
// and base typing attributes.
type TypingModule struct {
	ctx *Context
}

// NewTypingModule creates a new typing module.
func NewTypingModule(ctx *Context) *TypingModule {
	return &TypingModule{ctx: ctx}
}

// Name returns the module name.
func (m *TypingModule) Name() string {
	return "typing"
}

// Register registers the module into the Lua state.
func (m *TypingModule) Register(L *lua.LState, ns *lua.LTable) {
	mod := L.NewTable()

	L.SetField(mod, "activate", L.NewFunction(m.activate))
	L.SetField(mod, "deactivate", L.NewFunction(m.deactivate))
	L.SetField(mod, "deactivate_all", L.NewFunction(m.deactivateAll))
	L.SetField(mod, "active", L.NewFunction(m.active))
	L.SetField(mod, "transform", L.NewFunction(m.transform))

	L.SetField(ns, m.Name(), mod)
}

// activate(name, value)
// Adds an attribute applied to all subsequent insertions.
func (m *TypingModule) activate(L *lua.LState) int {
	name := L.CheckString(1)
	v, ok := luaToValue(L.CheckAny(2))
	if !ok {
		L.ArgError(2, "value must be a string, number, boolean, or userdata")
		return 0
	}
	m.ctx.Session.Typing().Activate(name, v)
	return 0
}

// deactivate(name)
func (m *TypingModule) deactivate(L *lua.LState) int {
	m.ctx.Session.Typing().Deactivate(L.CheckString(1))
	return 0
}

// deactivate_all()
func (m *TypingModule) deactivateAll(L *lua.LState) int {
	m.ctx.Session.Typing().DeactivateAll()
	return 0
}

// active() -> {name, ...}
// Returns the active attribute names in activation order.
func (m *TypingModule) active(L *lua.LState) int {
	tbl := L.NewTable()
	for i, name := range m.ctx.Session.Typing().Active() {
		tbl.RawSetInt(i+1, lua.LString(name))
	}
	L.Push(tbl)
	return 1
}

// transform(fn)
// Replaces the base typing attributes with fn(current).
func (m *TypingModule) transform(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.ctx.Session.Typing().TransformBase(func(cur attrtext.AttrSet) attrtext.AttrSet {
		err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, attrsToLua(L, cur))
		if err != nil {
			m.ctx.Log.Error().Err(err).Msg("typing transformer failed")
			return cur
		}
		ret := L.Get(-1)
		L.Pop(1)
		return luaToAttrs(ret)
	})
	return 0
}
