package config

import "errors"

// Errors returned by configuration validation.
var (
	ErrInvalidBounds = errors.New("editor width and height must be positive")
	ErrInvalidGrid   = errors.New("line height and char width must be positive")
	ErrInvalidMode   = errors.New("viewport default_mode must be top or bottom")
)
