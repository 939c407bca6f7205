package plugin

import "errors"

// Errors returned by the plugin system.
var (
	ErrNilManifest    = errors.New("nil manifest")
	ErrInvalidName    = errors.New("plugin name is required")
	ErrNotLoaded      = errors.New("plugin is not loaded")
	ErrAlreadyLoaded  = errors.New("plugin is already loaded")
	ErrEntryNotFound  = errors.New("plugin entry point not found")
	ErrPluginNotFound = errors.New("plugin not found")
)
