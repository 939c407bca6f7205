package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/event"
)

// EventModule implements the ink.events API module. Handlers registered by
// a plugin are tracked so they can all be removed when the plugin unloads.
type EventModule struct {
	ctx  *Context
	subs []event.Subscription
}

// NewEventModule creates a new event module.
func NewEventModule(ctx *Context) *EventModule {
	return &EventModule{ctx: ctx}
}

// Name returns the module name.
func (m *EventModule) Name() string {
	return "events"
}

// Register registers the module into the Lua state.
func (m *EventModule) Register(L *lua.LState, ns *lua.LTable) {
	mod := L.NewTable()

	L.SetField(mod, "on", L.NewFunction(m.on))
	L.SetField(mod, "emit", L.NewFunction(m.emit))

	L.SetField(ns, m.Name(), mod)
}

// on(topic, fn)
// Registers a handler for a topic. The handler receives the event data
// table. Handler errors are logged and do not propagate.
func (m *EventModule) on(L *lua.LState) int {
	topic := event.Topic(L.CheckString(1))
	fn := L.CheckFunction(2)

	sub := m.ctx.Session.Bus().Subscribe(topic, func(ev event.Event) {
		data := L.NewTable()
		for k, v := range ev.Data {
			L.SetField(data, k, anyToLua(L, v))
		}
		err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, data)
		if err != nil {
			m.ctx.Log.Error().Err(err).Str("topic", string(ev.Topic)).Msg("event handler failed")
		}
	})
	m.subs = append(m.subs, sub)
	return 0
}

// emit(topic, data?)
// Publishes a plugin-defined event on the bus.
func (m *EventModule) emit(L *lua.LState) int {
	topic := event.Topic(L.CheckString(1))
	data := map[string]any{}
	if tbl, ok := L.Get(2).(*lua.LTable); ok {
		tbl.ForEach(func(k, v lua.LValue) {
			name, ok := k.(lua.LString)
			if !ok {
				return
			}
			data[string(name)] = luaToAny(v)
		})
	}
	m.ctx.Session.Bus().Publish(event.Event{Topic: topic, Data: data})
	return 0
}

// UnsubscribeAll removes every handler the module registered. Called when
// the owning plugin unloads.
func (m *EventModule) UnsubscribeAll() {
	for _, sub := range m.subs {
		m.ctx.Session.Bus().Unsubscribe(sub)
	}
	m.subs = nil
}

// anyToLua converts event payload values to Lua. Payloads carry plain
// scalars only.
func anyToLua(L *lua.LState, v any) lua.LValue {
	switch x := v.(type) {
	case string:
		return lua.LString(x)
	case int:
		return lua.LNumber(x)
	case int64:
		return lua.LNumber(x)
	case float64:
		return lua.LNumber(x)
	case bool:
		return lua.LBool(x)
	default:
		return lua.LNil
	}
}

// luaToAny converts plugin-supplied payload values to Go scalars.
func luaToAny(v lua.LValue) any {
	switch x := v.(type) {
	case lua.LString:
		return string(x)
	case lua.LNumber:
		return float64(x)
	case lua.LBool:
		return bool(x)
	default:
		return nil
	}
}
