package config

import "errors"

// ErrInvalidAssignment is returned for a --set value that is not key=value.
var ErrInvalidAssignment = errors.New("invalid assignment, want key=value")
