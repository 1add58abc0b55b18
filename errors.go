package sharedlock

import "errors"

var (
	// ErrDeadlock is returned when the calling goroutine already holds the
	// write side of the lock and asks for it again, in either mode.
	// Re-entrant acquisition is not supported; restructure the caller.
	ErrDeadlock = errors.New("sharedlock: deadlock")

	// ErrPoisoned is returned by Write when the owner bookkeeping is found
	// in a state that no correct release could have produced. The lock must
	// be considered unusable. The same condition discovered while releasing
	// a write guard is not returned: the release panics with an error
	// wrapping ErrPoisoned.
	ErrPoisoned = errors.New("sharedlock: poisoned")
)
