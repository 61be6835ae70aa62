package core

import "errors"

// ErrInvalidInput is the root of every input validation error in this module.
// Package-specific sentinels wrap it so callers can test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
