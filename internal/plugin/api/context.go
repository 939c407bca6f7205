// Package api provides the Lua-facing modules plugins use to drive the
// extension core. Each module registers a table of functions under the
// global ink namespace. All offsets crossing the boundary are 0-based
// character offsets, matching the core's coordinate space.
package api

import (
	"github.com/rs/zerolog"

	"github.com/dshills/inkwell/internal/editor"
)

// Context carries the editor session the modules operate on.
type Context struct {
	Session *editor.Session
	Log     zerolog.Logger
}

// Namespace is the global table plugins access modules through.
const Namespace = "ink"
