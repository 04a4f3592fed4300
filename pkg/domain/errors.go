package domain

import "errors"

// ErrNoMachine is returned when a simulation or analysis operation is
// invoked before any machine has been loaded successfully.
var ErrNoMachine = errors.New("no machine loaded")

// ErrInvalidSession is returned when a session document is malformed
// or structurally incomplete. Import failures are fully recoverable;
// no partial session is ever returned.
var ErrInvalidSession = errors.New("invalid session document")

// ErrSessionNotFound is returned by session stores when an id cannot
// be found.
var ErrSessionNotFound = errors.New("session not found")
