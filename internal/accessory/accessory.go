// Package accessory tracks the editor's accessory view: a single helper
// view overlaid on the editor, attached either as a sibling in the same
// container or free-floating relative to a top-level host view. The view
// hierarchy itself is an external collaborator; this package only issues
// attach/detach commands and bookkeeping.
package accessory

import (
	"github.com/dshills/inkwell/internal/geom"
)

// Mode describes how the accessory view is attached.
type Mode uint8

const (
	// ModeSibling attaches the view to the editor's superview, so the
	// editor and the accessory are siblings in the view hierarchy.
	ModeSibling Mode = iota
	// ModeFreeFloating attaches the view to the top-level host view, for
	// accessories only loosely coupled to the editor's position.
	ModeFreeFloating
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSibling:
		return "sibling"
	case ModeFreeFloating:
		return "free-floating"
	default:
		return "unknown"
	}
}

// Space identifies a coordinate space known to the host.
type Space uint8

const (
	// SpaceSuperview is the coordinate space of the editor's superview.
	SpaceSuperview Space = iota
	// SpaceTopLevel is the coordinate space of the top-level host view.
	SpaceTopLevel
)

// View is an opaque handle to a host-managed view. The manager never
// controls a view's lifetime; handles are non-owning.
type View interface {
	// ID returns a stable identifier for the view.
	ID() string
	// Frame returns the view's frame in its current coordinate space.
	Frame() geom.Rect
	// SetFrame moves the view.
	SetFrame(geom.Rect)
}

// Host is the view-hierarchy collaborator. Attach and detach are
// best-effort, fire-and-forget commands: the host never fails them. The
// host is also the authority on coordinate conversion and on whether a
// handle is still valid; this package performs no validity checks itself.
type Host interface {
	// Attach adds the view to the hierarchy with the given frame,
	// interpreted in the given coordinate space.
	Attach(v View, frame geom.Rect, space Space)
	// Detach removes the view from the hierarchy.
	Detach(v View)
	// ConvertRect converts a rectangle between coordinate spaces.
	ConvertRect(r geom.Rect, from, to Space) geom.Rect
	// Superview returns the editor's superview.
	Superview() View
	// TopLevel discovers the top-level view when none was configured.
	TopLevel() View
}

// Attachment records the single live accessory attachment. HostHandle is a
// non-owning reference; if the host view is destroyed externally the
// attachment becomes invalid and the caller must detach explicitly.
type Attachment struct {
	View       View
	Mode       Mode
	Position   geom.Point
	HostHandle View
}

// Manager tracks at most one attached accessory view per editor session.
// Attach calls while a view is attached are silent no-ops, as are detach
// calls naming a view the manager does not recognize.
type Manager struct {
	host     Host
	topLevel View
	current  *Attachment
}

// NewManager creates a manager issuing commands to the given host.
func NewManager(host Host) *Manager {
	return &Manager{host: host}
}

// Attached returns the current attachment. The second result is false when
// no view is attached.
func (m *Manager) Attached() (Attachment, bool) {
	if m.current == nil {
		return Attachment{}, false
	}
	return *m.current, true
}

// IsAttached returns true if an accessory view is attached.
func (m *Manager) IsAttached() bool {
	return m.current != nil
}

// SetTopLevelHost sets the view used by future free-floating attachments.
// An already-attached view is unaffected.
func (m *Manager) SetTopLevelHost(v View) {
	m.topLevel = v
}

// AttachSibling attaches the view as a sibling of the editor at the given
// position in the superview's coordinate space. A no-op if a view is
// already attached.
func (m *Manager) AttachSibling(v View, position geom.Point) {
	if m.current != nil || v == nil {
		return
	}

	frame := frameAt(v, position)
	v.SetFrame(frame)
	m.host.Attach(v, frame, SpaceSuperview)

	m.current = &Attachment{
		View:       v,
		Mode:       ModeSibling,
		Position:   position,
		HostHandle: m.host.Superview(),
	}
}

// AttachFreeFloating attaches the view to the top-level host at the given
// absolute position. The configured top-level host is used when set;
// otherwise the host discovers one. A no-op if a view is already attached.
func (m *Manager) AttachFreeFloating(v View, position geom.Point) {
	if m.current != nil || v == nil {
		return
	}

	hostView := m.topLevel
	if hostView == nil {
		hostView = m.host.TopLevel()
	}

	frame := frameAt(v, position)
	v.SetFrame(frame)
	m.host.Attach(v, frame, SpaceTopLevel)

	m.current = &Attachment{
		View:       v,
		Mode:       ModeFreeFloating,
		Position:   position,
		HostHandle: hostView,
	}
}

// Detach removes a previously attached accessory view. A no-op if v is not
// the currently attached view. Regardless of the attach mode used, the
// view's frame is left expressed in the editor superview's coordinate
// space, so callers always get one consistent frame of reference.
func (m *Manager) Detach(v View) {
	if m.current == nil || v == nil || m.current.View.ID() != v.ID() {
		return
	}

	mode := m.current.Mode
	m.host.Detach(v)

	if mode == ModeFreeFloating {
		v.SetFrame(m.host.ConvertRect(v.Frame(), SpaceTopLevel, SpaceSuperview))
	}

	m.current = nil
}

// frameAt positions the view's current size at the given origin.
func frameAt(v View, position geom.Point) geom.Rect {
	f := v.Frame()
	return geom.Rect{X: position.X, Y: position.Y, W: f.W, H: f.H}
}
