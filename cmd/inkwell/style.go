package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inkwell/internal/engine/attrtext"
)

// styleFor maps well-known text attributes onto a terminal style.
// Attachments render reversed so their placeholder cell stands out.
func styleFor(attrs attrtext.AttrSet) tcell.Style {
	style := tcell.StyleDefault

	if v, ok := attrs["bold"]; ok && truthy(v) {
		style = style.Bold(true)
	}
	if v, ok := attrs["italic"]; ok && truthy(v) {
		style = style.Italic(true)
	}
	if v, ok := attrs["underline"]; ok && truthy(v) {
		style = style.Underline(true)
	}
	if v, ok := attrs["color"]; ok && v.Kind() == attrtext.KindString {
		style = style.Foreground(tcell.GetColor(v.Str()))
	}
	if _, ok := attrs[attrtext.AttrAttachment]; ok {
		style = style.Reverse(true)
	}
	return style
}

func truthy(v attrtext.Value) bool {
	switch v.Kind() {
	case attrtext.KindBool:
		return v.Bool()
	case attrtext.KindInt:
		return v.Int() != 0
	case attrtext.KindString:
		return v.Str() != ""
	default:
		return false
	}
}
