package accessory

import (
	"github.com/google/uuid"

	"github.com/dshills/inkwell/internal/geom"
)

// BasicView is a plain View handle carrying an identity and a frame. Hosts
// that have no richer handle type of their own can use it directly; it is
// also what the demo host and tests attach.
type BasicView struct {
	id    string
	frame geom.Rect
}

// NewBasicView creates a view handle with a fresh unique identity.
func NewBasicView(frame geom.Rect) *BasicView {
	return &BasicView{id: uuid.NewString(), frame: frame}
}

// ID returns the view's identifier.
func (v *BasicView) ID() string {
	return v.id
}

// Frame returns the view's frame.
func (v *BasicView) Frame() geom.Rect {
	return v.frame
}

// SetFrame moves the view.
func (v *BasicView) SetFrame(f geom.Rect) {
	v.frame = f
}
