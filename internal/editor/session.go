// Package editor composes the extension core around a single owned
// document: the attributed-text buffer, the mutation engine, the typing
// state, the viewport-lock controller, the accessory manager, the touch
// router, and the event bus plugins subscribe to.
package editor

import (
	"github.com/dshills/inkwell/internal/accessory"
	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/engine/attrtext"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/engine/typing"
	"github.com/dshills/inkwell/internal/event"
	"github.com/dshills/inkwell/internal/geom"
	"github.com/dshills/inkwell/internal/touch"
	"github.com/dshills/inkwell/internal/viewport"
)

// Session is one editor's extension core. It exclusively owns its buffer;
// every component borrows it per call and never retains it. A Session is
// single-threaded: operations run to completion on the owning thread, and
// callers serialize any external access.
type Session struct {
	buf    *buffer.Buffer
	typing *typing.Typing
	engine *engine.Engine
	vp     *viewport.Controller
	acc    *accessory.Manager
	touch  *touch.Router
	bus    *event.Bus
}

// Options configure a Session.
type Options struct {
	content    attrtext.Text
	oracle     viewport.Oracle
	viewHost   accessory.Host
	bounds     geom.Rect
	lineHeight float64
	charWidth  float64
}

// Option configures a Session.
type Option func(*Options)

// WithContent sets the initial plain-text document content.
func WithContent(s string) Option {
	return func(o *Options) {
		o.content = attrtext.FromString(s, nil)
	}
}

// WithText sets the initial attributed document content.
func WithText(t attrtext.Text) Option {
	return func(o *Options) {
		o.content = t
	}
}

// WithOracle sets the layout oracle used by the viewport controller.
func WithOracle(oracle viewport.Oracle) Option {
	return func(o *Options) {
		o.oracle = oracle
	}
}

// WithViewHost sets the view-hierarchy host used by the accessory manager.
func WithViewHost(h accessory.Host) Option {
	return func(o *Options) {
		o.viewHost = h
	}
}

// WithBounds sets the editor bounds used for viewport geometry.
func WithBounds(r geom.Rect) Option {
	return func(o *Options) {
		o.bounds = r
	}
}

// WithGrid sets the cell size of the fallback layout oracle. It has no
// effect when WithOracle supplies a real oracle.
func WithGrid(lineHeight, charWidth float64) Option {
	return func(o *Options) {
		o.lineHeight = lineHeight
		o.charWidth = charWidth
	}
}

// New creates a Session. Without options it holds an empty document, a
// monospaced fallback layout oracle, and a no-op view host.
func New(opts ...Option) *Session {
	options := Options{bounds: geom.NewRect(0, 0, 320, 240), lineHeight: 16, charWidth: 8}
	for _, opt := range opts {
		opt(&options)
	}

	s := &Session{
		buf:    buffer.NewFromText(options.content),
		typing: typing.New(),
		bus:    event.NewBus(),
	}

	s.engine = engine.New(s.buf, s.typing, engine.WithChangeFunc(s.publishChange))

	oracle := options.oracle
	if oracle == nil {
		oracle = viewport.NewFixedLineOracle(s.buf, options.lineHeight, options.charWidth)
	}
	s.vp = viewport.NewController(s.buf, oracle, options.bounds)

	host := options.viewHost
	if host == nil {
		host = accessory.NewNopHost()
	}
	s.acc = accessory.NewManager(host)

	s.touch = touch.NewRouter(s.vp, s.bus)
	return s
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Engine returns the mutation engine.
func (s *Session) Engine() *engine.Engine {
	return s.engine
}

// Typing returns the typing state.
func (s *Session) Typing() *typing.Typing {
	return s.typing
}

// Viewport returns the viewport-lock controller.
func (s *Session) Viewport() *viewport.Controller {
	return s.vp
}

// Accessory returns the accessory attachment manager.
func (s *Session) Accessory() *accessory.Manager {
	return s.acc
}

// Touch returns the touch router.
func (s *Session) Touch() *touch.Router {
	return s.touch
}

// Bus returns the event bus.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// EnterViewport engages the viewport lock and announces the transition.
// Redundant calls neither transition nor publish.
func (s *Session) EnterViewport(mode viewport.Mode, captureTouches bool) geom.Rect {
	wasActive := s.vp.IsActive()
	rect := s.vp.Enter(mode, captureTouches)
	if !wasActive && s.vp.IsActive() {
		s.bus.Publish(event.Event{
			Topic: event.TopicViewportEnter,
			Data:  map[string]any{"mode": mode.String()},
		})
	}
	return rect
}

// ExitViewport disengages the viewport lock and announces the transition.
// Redundant calls neither transition nor publish.
func (s *Session) ExitViewport() {
	if !s.vp.IsActive() {
		return
	}
	s.vp.Exit()
	s.bus.Publish(event.Event{Topic: event.TopicViewportExit})
}

// publishChange forwards engine mutations onto the bus.
func (s *Session) publishChange(c engine.Change) {
	s.bus.Publish(event.Event{
		Topic: event.TopicTextChange,
		Data: map[string]any{
			"start":  c.NewRange.Start,
			"end":    c.NewRange.End,
			"length": s.buf.Len(),
		},
	})
}
