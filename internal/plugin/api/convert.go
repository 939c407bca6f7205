package api

import (
	"math"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/engine/attrtext"
)

// valueToLua converts an attribute value to its Lua representation.
func valueToLua(L *lua.LState, v attrtext.Value) lua.LValue {
	switch v.Kind() {
	case attrtext.KindString:
		return lua.LString(v.Str())
	case attrtext.KindInt:
		return lua.LNumber(v.Int())
	case attrtext.KindFloat:
		return lua.LNumber(v.Float())
	case attrtext.KindBool:
		return lua.LBool(v.Bool())
	case attrtext.KindHandle:
		ud := L.NewUserData()
		ud.Value = v.Handle()
		return ud
	default:
		return lua.LNil
	}
}

// luaToValue converts a Lua value to an attribute value. Integral numbers
// become ints, other numbers floats, userdata an opaque handle.
func luaToValue(lv lua.LValue) (attrtext.Value, bool) {
	switch v := lv.(type) {
	case lua.LString:
		return attrtext.StringValue(string(v)), true
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) {
			return attrtext.IntValue(int64(f)), true
		}
		return attrtext.FloatValue(f), true
	case lua.LBool:
		return attrtext.BoolValue(bool(v)), true
	case *lua.LUserData:
		return attrtext.HandleValue(v.Value), true
	default:
		return attrtext.Value{}, false
	}
}

// attrsToLua converts an attribute set to a Lua table.
func attrsToLua(L *lua.LState, attrs attrtext.AttrSet) *lua.LTable {
	tbl := L.NewTable()
	for name, v := range attrs {
		L.SetField(tbl, name, valueToLua(L, v))
	}
	return tbl
}

// luaToAttrs converts a Lua table to an attribute set. Non-table input
// yields an empty set; entries with unconvertible values are skipped.
func luaToAttrs(lv lua.LValue) attrtext.AttrSet {
	attrs := attrtext.AttrSet{}
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return attrs
	}
	tbl.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok {
			return
		}
		if val, ok := luaToValue(v); ok {
			attrs[string(name)] = val
		}
	})
	return attrs
}

// textToLua converts attributed text to its Lua table form:
// {text = "...", runs = {{start = 0, len = 3, attrs = {...}}, ...}}.
func textToLua(L *lua.LState, t attrtext.Text) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "text", lua.LString(t.String()))

	runs := L.NewTable()
	for i, r := range t.Runs() {
		run := L.NewTable()
		L.SetField(run, "start", lua.LNumber(r.Start))
		L.SetField(run, "len", lua.LNumber(r.Len()))
		L.SetField(run, "attrs", attrsToLua(L, r.Attrs))
		runs.RawSetInt(i+1, run)
	}
	L.SetField(tbl, "runs", runs)
	return tbl
}

// luaToText converts the Lua table form back to attributed text. A plain
// string is accepted as unattributed text. Runs outside the text or with
// malformed fields are ignored; uncovered characters get no attributes.
func luaToText(lv lua.LValue) attrtext.Text {
	if s, ok := lv.(lua.LString); ok {
		return attrtext.FromString(string(s), nil)
	}
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		return attrtext.Empty()
	}

	str := ""
	if s, ok := tbl.RawGetString("text").(lua.LString); ok {
		str = string(s)
	}
	out := attrtext.FromString(str, nil)

	runs, ok := tbl.RawGetString("runs").(*lua.LTable)
	if !ok {
		return out
	}
	runs.ForEach(func(_, rv lua.LValue) {
		run, ok := rv.(*lua.LTable)
		if !ok {
			return
		}
		start, okS := run.RawGetString("start").(lua.LNumber)
		length, okL := run.RawGetString("len").(lua.LNumber)
		if !okS || !okL || length <= 0 {
			return
		}
		s, e := int(start), int(start)+int(length)
		if s < 0 || e > out.Len() {
			return
		}
		for name, v := range luaToAttrs(run.RawGetString("attrs")) {
			out = applyAttr(out, s, e, name, v)
		}
	})
	return out
}

// applyAttr sets one attribute over [start, end) of t.
func applyAttr(t attrtext.Text, start, end int, name string, v attrtext.Value) attrtext.Text {
	span := t.Slice(start, end)
	restamped := attrtext.Empty()
	for _, r := range span.Runs() {
		sub := span.Slice(r.Start, r.End)
		restamped = restamped.Append(attrtext.FromString(sub.String(), r.Attrs.With(name, v)))
	}
	return t.Replace(start, end, restamped)
}
