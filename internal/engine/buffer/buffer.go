package buffer

import (
	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/geom"
)

// Buffer holds the attributed document together with the selection and
// scroll state expressed in its coordinate space. It is exclusively owned
// by one editor session; collaborators borrow it for the duration of a call
// and never retain it. Buffer is not safe for concurrent use — callers
// serialize access on the thread that owns the editor.
type Buffer struct {
	text   attrtext.Text
	sel    Selection
	scroll geom.Offset
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewFromText creates a buffer holding the given attributed text.
func NewFromText(t attrtext.Text) *Buffer {
	return &Buffer{text: t}
}

// Text returns the current attributed text. Text values are immutable, so
// the returned value is safe to hold across later mutations.
func (b *Buffer) Text() attrtext.Text {
	return b.text
}

// SetText replaces the document content. The selection is clamped to the
// new length.
func (b *Buffer) SetText(t attrtext.Text) {
	b.text = t
	b.clampSelection()
}

// Len returns the document length in characters.
func (b *Buffer) Len() int {
	return b.text.Len()
}

// String returns the plain text content.
func (b *Buffer) String() string {
	return b.text.String()
}

// Selection returns the current selection.
func (b *Buffer) Selection() Selection {
	return b.sel
}

// SetSelection sets the selection, clamping it to the document bounds.
func (b *Buffer) SetSelection(sel Selection) {
	b.sel = sel
	b.clampSelection()
}

// SelectedText returns the attributed text covered by the selection.
func (b *Buffer) SelectedText() attrtext.Text {
	r := b.sel.Range()
	return b.text.Slice(r.Start, r.End)
}

// ScrollOffset returns the current scroll offset.
func (b *Buffer) ScrollOffset() geom.Offset {
	return b.scroll
}

// SetScrollOffset sets the scroll offset.
func (b *Buffer) SetScrollOffset(o geom.Offset) {
	b.scroll = o
}

// Replace replaces [start, end) with the given attributed text and returns
// the range covered by the replacement. Bounds must already be clipped to
// the document; out-of-bounds arguments leave the buffer unchanged and
// return an empty range at start.
func (b *Buffer) Replace(start, end int, repl attrtext.Text) Range {
	if start < 0 || start > end || end > b.text.Len() {
		return Range{Start: start, End: start}
	}
	b.text = b.text.Replace(start, end, repl)
	b.clampSelection()
	return Range{Start: start, End: start + repl.Len()}
}

// clampSelection keeps the selection within [0, Len()].
func (b *Buffer) clampSelection() {
	n := b.text.Len()
	if b.sel.Anchor < 0 {
		b.sel.Anchor = 0
	}
	if b.sel.Anchor > n {
		b.sel.Anchor = n
	}
	if b.sel.Head < 0 {
		b.sel.Head = 0
	}
	if b.sel.Head > n {
		b.sel.Head = n
	}
}
