// Package viewport implements the single-line viewport lock: a state
// machine that pins the line containing the selection to the top or bottom
// of the editor's visible area, saving the selection and scroll state on
// entry and restoring it exactly on exit. Geometry comes from a layout
// oracle; this package never measures text itself.
package viewport

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/geom"
)

// Mode selects which edge of the viewport the locked line is pinned to.
type Mode uint8

const (
	// ModeTop locks the viewport to the top edge.
	ModeTop Mode = iota
	// ModeBottom locks the viewport to the bottom edge.
	ModeBottom
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTop:
		return "top"
	case ModeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// State is the controller's lifecycle state. Inactive is both the initial
// and the terminal state; no state is unreachable.
type State uint8

const (
	// StateInactive means the viewport lock is not engaged.
	StateInactive State = iota
	// StateActiveTop means the lock is engaged in top mode.
	StateActiveTop
	// StateActiveBottom means the lock is engaged in bottom mode.
	StateActiveBottom
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActiveTop:
		return "active-top"
	case StateActiveBottom:
		return "active-bottom"
	default:
		return "unknown"
	}
}

// Oracle reports text geometry. It is implemented by the host editor's
// layout engine; the controller treats it as authoritative and never
// second-guesses its answers.
type Oracle interface {
	// RectForRange returns the bounding rectangle of the given character
	// range, relative to the editor's bounds.
	RectForRange(r buffer.Range) geom.Rect
	// LineContaining returns the character range of the line holding the
	// given offset.
	LineContaining(offset int) buffer.Range
}

// Controller is the viewport-lock state machine. Exactly one instance
// exists per editor session. It borrows the buffer to snapshot and restore
// selection and scroll state; it never retains intermediate state beyond
// the Active snapshot.
type Controller struct {
	buf    *buffer.Buffer
	oracle Oracle
	bounds geom.Rect

	state          State
	captureTouches bool
	savedSel       buffer.Selection
	savedScroll    geom.Offset
}

// NewController creates an inactive controller over the given buffer and
// layout oracle.
func NewController(buf *buffer.Buffer, oracle Oracle, bounds geom.Rect) *Controller {
	return &Controller{buf: buf, oracle: oracle, bounds: bounds}
}

// SetBounds updates the editor bounds used to position the viewport
// rectangle. The host calls this when the editor is resized.
func (c *Controller) SetBounds(bounds geom.Rect) {
	c.bounds = bounds
}

// Bounds returns the editor bounds.
func (c *Controller) Bounds() geom.Rect {
	return c.bounds
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// IsActive returns true if the viewport lock is engaged.
func (c *Controller) IsActive() bool {
	return c.state != StateInactive
}

// Mode returns the active mode. The second result is false when inactive.
func (c *Controller) Mode() (Mode, bool) {
	switch c.state {
	case StateActiveTop:
		return ModeTop, true
	case StateActiveBottom:
		return ModeBottom, true
	default:
		return ModeTop, false
	}
}

// CapturesTouches returns true if taps inside the viewport rectangle should
// be intercepted while active. The touch router reads this flag; the
// controller itself never routes events.
func (c *Controller) CapturesTouches() bool {
	return c.state != StateInactive && c.captureTouches
}

// Enter engages the viewport lock. The current selection and scroll offset
// are snapshotted for restore, and the returned rectangle describes the
// locked line positioned per the mode, relative to the editor's bounds.
//
// Entering while already active is a no-op: the active mode does not
// change, no new snapshot is taken, and the rectangle for the mode already
// active is returned.
func (c *Controller) Enter(mode Mode, captureTouches bool) geom.Rect {
	if c.state != StateInactive {
		active, _ := c.Mode()
		return c.RectForMode(active)
	}

	c.savedSel = c.buf.Selection()
	c.savedScroll = c.buf.ScrollOffset()
	c.captureTouches = captureTouches
	if mode == ModeBottom {
		c.state = StateActiveBottom
	} else {
		c.state = StateActiveTop
	}

	return c.RectForMode(mode)
}

// Exit disengages the viewport lock, restoring the selection and scroll
// offset captured by Enter. Exiting while inactive is a no-op.
func (c *Controller) Exit() {
	if c.state == StateInactive {
		return
	}
	c.buf.SetSelection(c.savedSel)
	c.buf.SetScrollOffset(c.savedScroll)
	c.state = StateInactive
	c.captureTouches = false
}

// ActiveRect returns the rectangle of the locked line for the active mode.
// The second result is false when inactive.
func (c *Controller) ActiveRect() (geom.Rect, bool) {
	mode, ok := c.Mode()
	if !ok {
		return geom.Rect{}, false
	}
	return c.RectForMode(mode), true
}

// RectForMode computes the rectangle Enter would return for the current
// selection and the given mode. It is a pure query: no state changes, no
// snapshot, valid in any state.
func (c *Controller) RectForMode(mode Mode) geom.Rect {
	offset := c.buf.Selection().Head
	if n := c.buf.Len(); offset > n {
		offset = n
	}
	if offset < 0 {
		offset = 0
	}

	line := c.oracle.LineContaining(offset)
	lineRect := c.oracle.RectForRange(line)

	y := 0.0
	if mode == ModeBottom {
		y = c.bounds.H - lineRect.H
	}
	return geom.Rect{X: 0, Y: y, W: c.bounds.W, H: lineRect.H}
}
