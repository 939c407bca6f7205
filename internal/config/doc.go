// Package config loads the editor's TOML configuration: editor bounds and
// the fallback layout grid, viewport-lock defaults, plugin discovery, and
// logging. A file watcher reloads the configuration live when the file
// changes on disk.
package config
