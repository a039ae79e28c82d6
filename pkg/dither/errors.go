package dither

import "errors"

// ErrUnsupportedConfiguration is returned when a stage receives a mode
// or a matrix size it does not implement.
var ErrUnsupportedConfiguration = errors.New("unsupported configuration")
