// Package engine provides the mutation engine of the extension core.
//
// The engine executes plugin-driven edits against the attributed-text
// buffer: transformer-based replacement of selected or ranged text,
// plain/attributed/attachment insertion, range removal, and attribute
// stripping. New plain text is tagged with the effective typing attributes
// supplied by the typing package.
//
// # Failure Policy
//
// The engine never returns errors. Ranges partly outside the buffer are
// truncated; ranges starting beyond the buffer end make the call a silent
// no-op. This is the deliberate contract of the plugin surface: plugins
// operate on transient, caller-observable state and redundant calls must
// be harmless.
//
// # Concurrency
//
// The engine is single-threaded and synchronous. Every operation runs to
// completion on the thread that owns the editor session; callers serialize
// external access.
package engine
