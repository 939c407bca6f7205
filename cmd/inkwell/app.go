package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/editor"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/geom"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/dshills/inkwell/internal/viewport"
)

// cellSize is the grid unit the terminal preview hands to the layout
// oracle: one cell is one character wide and one line tall.
const cellSize = 1

// app is the terminal preview: a tcell surface over one editor session,
// with the configured plugins loaded against it.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	screen  tcell.Screen
	session *editor.Session
	plugins *plugin.Manager
	watcher *config.Watcher

	quit bool
}

func newApp(cfg config.Config, cfgPath, text string, log zerolog.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	w, h := screen.Size()
	session := editor.New(
		editor.WithContent(text),
		editor.WithBounds(geom.NewRect(0, 0, float64(w), float64(h-1))),
		editor.WithGrid(cellSize, cellSize),
	)

	a := &app{
		cfg:     cfg,
		log:     log,
		screen:  screen,
		session: session,
		plugins: plugin.NewManager(session, log),
	}

	if err := a.loadPlugins(); err != nil {
		screen.Fini()
		return nil, err
	}

	// Live config reload lands in the event loop as a posted event so the
	// session stays single-threaded.
	watcher, err := config.NewWatcher(cfgPath, func(next config.Config) {
		ev := &eventConfigReload{cfg: next}
		ev.SetEventNow()
		_ = screen.PostEvent(ev)
	}, log)
	if err != nil {
		log.Warn().Err(err).Msg("config watcher unavailable")
	} else {
		a.watcher = watcher
	}
	return a, nil
}

// eventConfigReload carries a freshly loaded configuration into the event
// loop.
type eventConfigReload struct {
	tcell.EventTime
	cfg config.Config
}

func (a *app) loadPlugins() error {
	found, err := plugin.Discover(a.cfg.Plugins.Dir)
	if err != nil {
		return err
	}
	for _, d := range found {
		if a.cfg.PluginDisabled(d.Manifest.Name) {
			a.log.Info().Str("plugin", d.Manifest.Name).Msg("plugin disabled by config")
			continue
		}
		if err := a.plugins.Load(d); err != nil {
			a.log.Error().Err(err).Str("plugin", d.Manifest.Name).Msg("plugin load failed")
		}
	}
	return nil
}

// Shutdown releases plugins and the terminal.
func (a *app) Shutdown() {
	a.plugins.CloseAll()
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.screen.Fini()
}

// Run drives the event loop until quit.
func (a *app) Run() error {
	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			a.session.Viewport().SetBounds(geom.NewRect(0, 0, float64(w), float64(h-1)))
			a.screen.Sync()
		case *eventConfigReload:
			a.cfg = ev.cfg
		}
	}
	return nil
}

func (a *app) handleKey(ev *tcell.EventKey) {
	buf := a.session.Buffer()
	head := buf.Selection().Head

	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		a.quit = true

	case tcell.KeyCtrlT:
		a.session.EnterViewport(viewport.ModeTop, a.cfg.Viewport.CaptureTouches)
	case tcell.KeyCtrlB:
		a.session.EnterViewport(viewport.ModeBottom, a.cfg.Viewport.CaptureTouches)
	case tcell.KeyEscape:
		a.session.ExitViewport()

	case tcell.KeyLeft:
		buf.SetSelection(buffer.NewCursorSelection(head - 1))
	case tcell.KeyRight:
		buf.SetSelection(buffer.NewCursorSelection(head + 1))

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if head > 0 {
			a.session.Engine().RemoveTextForRange(buffer.NewRange(head-1, head))
			buf.SetSelection(buffer.NewCursorSelection(head - 1))
		}

	case tcell.KeyEnter:
		a.session.Engine().InsertPlainText("\n", head)
		buf.SetSelection(buffer.NewCursorSelection(head + 1))

	case tcell.KeyRune:
		a.session.Engine().InsertPlainText(string(ev.Rune()), head)
		buf.SetSelection(buffer.NewCursorSelection(head + 1))
	}
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	p := geom.Point{X: float64(x), Y: float64(y)}
	if a.session.Touch().HandleTap(p) {
		return
	}
	a.session.Buffer().SetSelection(buffer.NewCursorSelection(a.offsetAt(x, y)))
}

// offsetAt maps a screen cell back to a character offset on the grid.
func (a *app) offsetAt(x, y int) int {
	lines := strings.Split(a.session.Buffer().String(), "\n")
	if y >= len(lines) {
		return a.session.Buffer().Len()
	}
	offset := 0
	for i := 0; i < y; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	col := len([]rune(lines[y]))
	if x < col {
		col = x
	}
	return offset + col
}

func (a *app) draw() {
	a.screen.Clear()

	text := a.session.Buffer().Text()
	x, y := 0, 0
	for i, r := range []rune(text.String()) {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		a.screen.SetContent(x, y, r, nil, styleFor(text.AttrsAt(i)))
		x++
	}

	a.drawStatus()

	head := a.session.Buffer().Selection().Head
	cx, cy := a.cellAt(head)
	a.screen.ShowCursor(cx, cy)
	a.screen.Show()
}

// cellAt maps a character offset to its screen cell on the grid.
func (a *app) cellAt(offset int) (x, y int) {
	runes := []rune(a.session.Buffer().String())
	if offset > len(runes) {
		offset = len(runes)
	}
	for i := 0; i < offset; i++ {
		if runes[i] == '\n' {
			x, y = 0, y+1
		} else {
			x++
		}
	}
	return x, y
}

func (a *app) drawStatus() {
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Reverse(true)

	status := fmt.Sprintf(" %s | plugins: %d", a.session.Viewport().State(), a.plugins.Len())
	if active := a.session.Typing().Active(); len(active) > 0 {
		status += " | typing: " + strings.Join(active, ",")
	}

	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		a.screen.SetContent(x, h-1, r, nil, style)
	}
}
