package accessory

import "github.com/dshills/inkwell/internal/geom"

// NopHost is a Host for sessions running without a view hierarchy. Attach
// and detach commands are accepted and ignored, coordinate conversion is
// the identity, and the superview and top-level handles are placeholder
// views.
type NopHost struct {
	superview *BasicView
	topLevel  *BasicView
}

// NewNopHost creates a host with placeholder superview and top-level views.
func NewNopHost() *NopHost {
	return &NopHost{
		superview: NewBasicView(geom.Rect{}),
		topLevel:  NewBasicView(geom.Rect{}),
	}
}

// Attach implements Host.
func (h *NopHost) Attach(View, geom.Rect, Space) {}

// Detach implements Host.
func (h *NopHost) Detach(View) {}

// ConvertRect implements Host with an identity conversion.
func (h *NopHost) ConvertRect(r geom.Rect, from, to Space) geom.Rect {
	return r
}

// Superview implements Host.
func (h *NopHost) Superview() View {
	return h.superview
}

// TopLevel implements Host.
func (h *NopHost) TopLevel() View {
	return h.topLevel
}
