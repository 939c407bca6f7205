// Package touch routes taps around the single-line viewport lock. The
// router reads the viewport controller's captureTouches flag and active
// rectangle; taps landing inside it become synthetic events for plugins
// instead of normal editing input. Actual touch dispatch belongs to the
// host — the router only makes the intercept decision.
package touch

import (
	"github.com/dshills/inkwell/internal/event"
	"github.com/dshills/inkwell/internal/geom"
	"github.com/dshills/inkwell/internal/viewport"
)

// Router decides whether a tap is intercepted by the viewport layer.
type Router struct {
	vp  *viewport.Controller
	bus *event.Bus
}

// NewRouter creates a router over the given controller and bus.
func NewRouter(vp *viewport.Controller, bus *event.Bus) *Router {
	return &Router{vp: vp, bus: bus}
}

// HandleTap reports a tap at the given point in the editor's bounds.
// Returns true if the tap was intercepted: the viewport lock is active
// with touch capture on and the point lies inside the active rectangle.
// Intercepted taps are published as viewport.tap events; all other taps
// are the host's to forward to normal editing.
func (r *Router) HandleTap(p geom.Point) bool {
	if !r.vp.CapturesTouches() {
		return false
	}
	rect, ok := r.vp.ActiveRect()
	if !ok || !rect.Contains(p) {
		return false
	}

	r.bus.Publish(event.Event{
		Topic: event.TopicViewportTap,
		Data:  map[string]any{"x": p.X, "y": p.Y},
	})
	return true
}
