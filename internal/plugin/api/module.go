package api

import (
	lua "github.com/yuin/gopher-lua"
)

// Module is one table of functions registered under the ink namespace.
type Module interface {
	// Name is the field the module occupies in the namespace table.
	Name() string
	// Register installs the module's functions into the Lua state.
	Register(L *lua.LState, ns *lua.LTable)
}

// Set is the full API surface installed into one plugin's Lua state. It
// tracks the resources plugins acquire through it so they can be released
// when the plugin unloads.
type Set struct {
	Text      *TextModule
	Typing    *TypingModule
	Viewport  *ViewportModule
	Accessory *AccessoryModule
	Events    *EventModule
}

// Install registers every API module into the Lua state under the global
// ink table and returns the set for later cleanup.
func Install(L *lua.LState, ctx *Context) *Set {
	s := &Set{
		Text:      NewTextModule(ctx),
		Typing:    NewTypingModule(ctx),
		Viewport:  NewViewportModule(ctx),
		Accessory: NewAccessoryModule(ctx),
		Events:    NewEventModule(ctx),
	}

	ns := L.NewTable()
	for _, m := range []Module{s.Text, s.Typing, s.Viewport, s.Accessory, s.Events} {
		m.Register(L, ns)
	}
	L.SetGlobal(Namespace, ns)
	return s
}

// Release frees everything the plugin acquired through the API: event
// subscriptions and attached accessory views.
func (s *Set) Release() {
	s.Events.UnsubscribeAll()
	s.Accessory.DetachAll()
}
