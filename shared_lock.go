package sharedlock

import (
	"fmt"
	"sync/atomic"

	"github.com/llxisdsh/sharedlock/internal/opt"
)

// writerBit is the writer flag of the state word. The remaining 63 bits
// count active readers.
const writerBit = uint64(1) << 63

// SharedLock is a spin-based Reader-Writer lock that owns the value it
// protects. The value is only reachable through a guard returned by Read or
// Write.
//
// Properties:
//   - Any number of readers, or a single writer.
//   - Busy-wait (Spinning) without timed backoff. Neither side is preferred, so a
//     steady stream of readers can starve a writer and vice versa.
//   - A goroutine that already holds the write guard gets ErrDeadlock from
//     Read or Write instead of spinning against itself.
//
// It is meant for very small critical sections. Deadlocks between distinct
// goroutines, e.g. two locks taken in opposite order, are not detected.
//
// The zero value is an unlocked lock holding the zero T.
// A SharedLock must not be copied after first use.
type SharedLock[T any] struct {
	_     noCopy
	state atomic.Uint64
	_     [opt.WordPad_]byte
	owner atomic.Uint64
	_     [opt.WordPad_]byte
	value T
}

// New returns an unlocked SharedLock protecting v.
func New[T any](v T) *SharedLock[T] {
	return &SharedLock[T]{value: v}
}

// Read acquires shared access. It spins while a writer holds or is
// claiming the lock.
//
// It fails with ErrDeadlock, without spinning, if the calling goroutine
// holds the write guard.
func (l *SharedLock[T]) Read() (*ReadGuard[T], error) {
	if l.isHeldByCurrentGoroutine() {
		return nil, ErrDeadlock
	}
	var spins int
	for {
		s := l.state.Load()
		if s&writerBit == 0 && l.state.CompareAndSwap(s, s+1) {
			return &ReadGuard[T]{lock: l}, nil
		}
		spin(&spins)
	}
}

// TryRead makes a single attempt to acquire shared access and reports
// whether it succeeded. It never spins; false means a writer holds or is
// claiming the lock, or the attempt lost a race with another goroutine.
func (l *SharedLock[T]) TryRead() (*ReadGuard[T], bool) {
	s := l.state.Load()
	if s&writerBit != 0 || !l.state.CompareAndSwap(s, s+1) {
		return nil, false
	}
	return &ReadGuard[T]{lock: l}, true
}

// Write acquires exclusive access.
//
// It first claims the writer flag, which stops new readers, then waits for
// readers that got in earlier to drain. Both waits spin without bound.
//
// It fails with ErrDeadlock, without spinning, if the calling goroutine
// already holds the write guard, and with ErrPoisoned if the owner word was
// left set by a broken release.
func (l *SharedLock[T]) Write() (*WriteGuard[T], error) {
	if l.isHeldByCurrentGoroutine() {
		return nil, ErrDeadlock
	}
	var spins int
	for {
		s := l.state.Load()
		if s&writerBit == 0 && l.state.CompareAndSwap(s, s|writerBit) {
			break
		}
		spin(&spins)
	}

	if l.owner.Load() != 0 {
		// Hand the flag back so the lock does not wedge; the stale owner
		// keeps every later Write failing.
		l.state.Add(^(writerBit - 1))
		return nil, ErrPoisoned
	}
	l.owner.Store(goid())

	// Wait for active readers.
	spins = 0
	for l.state.Load() != writerBit {
		spin(&spins)
	}
	return &WriteGuard[T]{lock: l}, nil
}

// CanRead reports whether the writer flag is clear, i.e. whether a Read
// issued now would not have to wait for a writer. The result is a snapshot
// and may be stale by the time it is used.
func (l *SharedLock[T]) CanRead() bool {
	return l.state.Load()&writerBit == 0
}

// WithRead runs fn with a copy of the protected value under shared access.
// The guard is released when fn returns or panics.
func (l *SharedLock[T]) WithRead(fn func(v T) error) error {
	g, err := l.Read()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g.Value())
}

// WithWrite runs fn with a pointer to the protected value under exclusive
// access. The guard is released when fn returns or panics. fn must not
// retain the pointer.
func (l *SharedLock[T]) WithWrite(fn func(v *T) error) error {
	g, err := l.Write()
	if err != nil {
		return err
	}
	defer g.Release()
	return fn(g.Ptr())
}

func (l *SharedLock[T]) isHeldByCurrentGoroutine() bool {
	id := l.owner.Load()
	return id != 0 && id == goid()
}

func (l *SharedLock[T]) unlockRead() {
	l.state.Add(^uint64(0))
}

func (l *SharedLock[T]) unlockWrite() {
	if s := l.state.Load(); s != writerBit {
		panic(fmt.Sprintf("sharedlock: write unlock with state %#x", s))
	}
	if !l.isHeldByCurrentGoroutine() {
		panic(fmt.Errorf("%w: write unlock by non-owner, owner id %d",
			ErrPoisoned, l.owner.Load()))
	}
	l.owner.Store(0)
	l.state.Add(^(writerBit - 1))
}
