package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/engine/buffer"
)

// TextModule implements the ink.text API module: the mutation engine's
// plugin surface.
type TextModule struct {
	ctx *Context
}

// NewTextModule creates a new text module.
func NewTextModule(ctx *Context) *TextModule {
	return &TextModule{ctx: ctx}
}

// Name returns the module name.
func (m *TextModule) Name() string {
	return "text"
}

// Register registers the module into the Lua state.
func (m *TextModule) Register(L *lua.LState, ns *lua.LTable) {
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "len", L.NewFunction(m.textLen))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "set_selection", L.NewFunction(m.setSelection))
	L.SetField(mod, "selected", L.NewFunction(m.selected))
	L.SetField(mod, "transform_selected", L.NewFunction(m.transformSelected))
	L.SetField(mod, "transform_range", L.NewFunction(m.transformRange))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "insert_attributed", L.NewFunction(m.insertAttributed))
	L.SetField(mod, "insert_attachment", L.NewFunction(m.insertAttachment))
	L.SetField(mod, "remove", L.NewFunction(m.remove))
	L.SetField(mod, "strip", L.NewFunction(m.strip))

	L.SetField(ns, m.Name(), mod)
}

// transformer wraps a Lua function as an engine transformer. A Lua error
// inside the function is logged and leaves the text unchanged.
func (m *TextModule) transformer(L *lua.LState, fn *lua.LFunction) engine.Transformer {
	return func(in attrtext.Text) attrtext.Text {
		err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, textToLua(L, in))
		if err != nil {
			m.ctx.Log.Error().Err(err).Msg("transformer failed")
			return in
		}
		ret := L.Get(-1)
		L.Pop(1)
		return luaToText(ret)
	}
}

// text() -> string
// Returns the plain document text.
func (m *TextModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.ctx.Session.Buffer().String()))
	return 1
}

// len() -> number
// Returns the document length in characters.
func (m *TextModule) textLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.ctx.Session.Buffer().Len()))
	return 1
}

// selection() -> anchor, head
func (m *TextModule) selection(L *lua.LState) int {
	sel := m.ctx.Session.Buffer().Selection()
	L.Push(lua.LNumber(sel.Anchor))
	L.Push(lua.LNumber(sel.Head))
	return 2
}

// set_selection(anchor, head)
func (m *TextModule) setSelection(L *lua.LState) int {
	anchor := L.CheckInt(1)
	head := L.CheckInt(2)
	m.ctx.Session.Buffer().SetSelection(buffer.NewSelection(anchor, head))
	return 0
}

// selected() -> attributed text table
func (m *TextModule) selected(L *lua.LState) int {
	L.Push(textToLua(L, m.ctx.Session.Buffer().SelectedText()))
	return 1
}

// transform_selected(fn)
// Replaces the selected text with the function's output.
func (m *TextModule) transformSelected(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.ctx.Session.Engine().TransformSelectedText(m.transformer(L, fn))
	return 0
}

// transform_range(start, end, fn)
// Replaces [start, end) with the function's output; the range is clipped
// to the document.
func (m *TextModule) transformRange(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.CheckInt(2)
	fn := L.CheckFunction(3)
	m.ctx.Session.Engine().TransformTextAtRange(buffer.NewRange(start, end), m.transformer(L, fn))
	return 0
}

// insert(text, location)
// Inserts plain text tagged with the effective typing attributes.
func (m *TextModule) insert(L *lua.LState) int {
	text := L.CheckString(1)
	loc := L.CheckInt(2)
	m.ctx.Session.Engine().InsertPlainText(text, loc)
	return 0
}

// insert_attributed(tbl, location)
// Inserts attributed text keeping the attributes in tbl.
func (m *TextModule) insertAttributed(L *lua.LState) int {
	tbl := L.CheckAny(1)
	loc := L.CheckInt(2)
	m.ctx.Session.Engine().InsertAttributedText(luaToText(tbl), loc)
	return 0
}

// insert_attachment(kind, location)
// Inserts an opaque attachment occupying one character position.
func (m *TextModule) insertAttachment(L *lua.LState) int {
	kind := L.CheckString(1)
	loc := L.CheckInt(2)
	m.ctx.Session.Engine().InsertAttachment(&attrtext.Attachment{Kind: kind}, loc)
	return 0
}

// remove(start, end)
// Deletes [start, end), clipped to the document.
func (m *TextModule) remove(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.CheckInt(2)
	m.ctx.Session.Engine().RemoveTextForRange(buffer.NewRange(start, end))
	return 0
}

// strip(start, end, name)
// Removes the named attribute from [start, end), clipped to the document.
func (m *TextModule) strip(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.CheckInt(2)
	name := L.CheckString(3)
	m.ctx.Session.Engine().StripAttribute(buffer.NewRange(start, end), name)
	return 0
}
