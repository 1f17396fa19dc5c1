package repository

import "errors"

// ErrNotFound is returned when a required row does not exist. Callers
// distinguish it from plain store failures with errors.Is.
var ErrNotFound = errors.New("not found")
