package engine

import (
	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/engine/typing"
)

// Transformer rewrites a piece of attributed text. Transformers are pure
// functions of their input; the engine never calls one with out-of-bounds
// content and never retains one beyond a single call.
type Transformer func(attrtext.Text) attrtext.Text

// Change describes a single applied mutation.
type Change struct {
	// OldRange is the range that was replaced, in pre-edit coordinates.
	OldRange buffer.Range
	// NewRange is the range covered by the replacement, in post-edit
	// coordinates.
	NewRange buffer.Range
}

// ChangeFunc observes applied mutations.
type ChangeFunc func(Change)

// Engine executes mutation operations against a borrowed Buffer, tagging
// new text with the typing attributes. Every operation resolves edge cases
// to a silent no-op — a range partly outside the buffer is truncated, a
// range starting beyond the buffer does nothing — and re-establishes the
// run partition invariant before returning. No partially-applied mutation
// is ever observable.
type Engine struct {
	buf    *buffer.Buffer
	typing *typing.Typing
	notify ChangeFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithChangeFunc registers an observer for applied mutations.
func WithChangeFunc(fn ChangeFunc) Option {
	return func(e *Engine) {
		e.notify = fn
	}
}

// New creates an Engine over the given buffer and typing state.
func New(buf *buffer.Buffer, ty *typing.Typing, opts ...Option) *Engine {
	e := &Engine{buf: buf, typing: ty}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Buffer returns the engine's buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Typing returns the engine's typing state.
func (e *Engine) Typing() *typing.Typing {
	return e.typing
}

// TransformSelectedText replaces the currently selected text with the
// transformer's output and updates the selection to cover the replacement.
// If the selection is empty or the transformer is nil, nothing happens.
func (e *Engine) TransformSelectedText(fn Transformer) {
	if fn == nil {
		return
	}
	sel := e.buf.Selection()
	if sel.IsEmpty() {
		return
	}
	r := sel.Range()
	out := fn(e.buf.Text().Slice(r.Start, r.End))
	newRange := e.buf.Replace(r.Start, r.End, out)
	e.buf.SetSelection(buffer.NewRangeSelection(newRange))
	e.changed(r, newRange)
}

// TransformTextAtRange replaces the text within the given range with the
// transformer's output. The range is clipped to the buffer: an end beyond
// the buffer is truncated, and a start beyond the buffer makes the call a
// no-op. The selection is not moved, only clamped if the buffer shrinks.
func (e *Engine) TransformTextAtRange(r buffer.Range, fn Transformer) {
	if fn == nil {
		return
	}
	clipped, ok := e.clip(r)
	if !ok {
		return
	}
	out := fn(e.buf.Text().Slice(clipped.Start, clipped.End))
	newRange := e.buf.Replace(clipped.Start, clipped.End, out)
	e.changed(clipped, newRange)
}

// InsertPlainText inserts text at the given location, clamped to the
// buffer. The text is tagged with the effective typing attributes: the base
// typing attributes overlaid by the activation stack.
func (e *Engine) InsertPlainText(text string, location int) {
	if text == "" {
		return
	}
	e.insert(attrtext.FromString(text, e.typing.Effective()), location)
}

// InsertAttributedText inserts attributed text at the given location,
// clamped to the buffer. The text keeps its own attributes; the typing
// state is not consulted.
func (e *Engine) InsertAttributedText(text attrtext.Text, location int) {
	if text.IsEmpty() {
		return
	}
	e.insert(text, location)
}

// InsertAttachment inserts an attachment as a single atomic character at
// the given location, tagged with the effective typing attributes.
func (e *Engine) InsertAttachment(a *attrtext.Attachment, location int) {
	if a == nil {
		return
	}
	e.insert(attrtext.ForAttachment(a, e.typing.Effective()), location)
}

// RemoveTextForRange deletes the characters covered by the range, clipped
// to the buffer. Adjacent runs left with identical attributes coalesce.
func (e *Engine) RemoveTextForRange(r buffer.Range) {
	clipped, ok := e.clip(r)
	if !ok || clipped.IsEmpty() {
		return
	}
	newRange := e.buf.Replace(clipped.Start, clipped.End, attrtext.Empty())
	e.changed(clipped, newRange)
}

// StripAttribute removes the named attribute from every run overlapping the
// range, clipped to the buffer. The activation stack is untouched.
func (e *Engine) StripAttribute(r buffer.Range, name string) {
	clipped, ok := e.clip(r)
	if !ok || clipped.IsEmpty() {
		return
	}
	e.buf.SetText(e.buf.Text().StripAttr(clipped.Start, clipped.End, name))
	e.changed(clipped, clipped)
}

// insert places text at a location clamped to [0, Len()].
func (e *Engine) insert(text attrtext.Text, location int) {
	if location < 0 {
		location = 0
	}
	if n := e.buf.Len(); location > n {
		location = n
	}
	newRange := e.buf.Replace(location, location, text)
	e.changed(buffer.NewRange(location, location), newRange)
}

// clip truncates the range to the buffer. The second result is false when
// the range cannot be resolved at all: an invalid range, or a start beyond
// the buffer end.
func (e *Engine) clip(r buffer.Range) (buffer.Range, bool) {
	if !r.IsValid() {
		return buffer.Range{}, false
	}
	n := e.buf.Len()
	if r.Start > n {
		return buffer.Range{}, false
	}
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End > n {
		r.End = n
	}
	return r, true
}

func (e *Engine) changed(old, new buffer.Range) {
	if e.notify != nil {
		e.notify(Change{OldRange: old, NewRange: new})
	}
}
