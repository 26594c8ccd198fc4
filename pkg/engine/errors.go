package engine

import "github.com/pkg/errors"

// ErrAlreadyStarted is returned by Start if called more than once in
// the same process; the engine owns exactly one State for its life.
var ErrAlreadyStarted = errors.New("engine already started")
