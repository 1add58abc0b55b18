package sharedlock

import "sync/atomic"

// ReadGuard represents shared access to the value of a SharedLock.
// Access ends with Release; a guard is typically released with defer right
// after a successful Read:
//
//	g, err := lock.Read()
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//	use(g.Value())
type ReadGuard[T any] struct {
	lock      *SharedLock[T]
	released  atomic.Bool
	onRelease func()
}

// Value returns a copy of the protected value.
// It panics if the guard has been released.
func (g *ReadGuard[T]) Value() T {
	if g.released.Load() {
		panic("sharedlock: use of released read guard")
	}
	return g.lock.value
}

// Release gives up shared access. Only the first call has an effect.
// Unlike a write guard, a read guard may be released by any goroutine.
func (g *ReadGuard[T]) Release() {
	if !g.released.CompareAndSwap(false, true) {
		return
	}
	g.lock.unlockRead()
	if g.onRelease != nil {
		g.onRelease()
	}
}

// WriteGuard represents exclusive access to the value of a SharedLock.
// It must be released by the goroutine that acquired it; releasing it
// anywhere else panics.
type WriteGuard[T any] struct {
	lock      *SharedLock[T]
	released  atomic.Bool
	onRelease func()
}

// Value returns a copy of the protected value.
func (g *WriteGuard[T]) Value() T {
	g.check()
	return g.lock.value
}

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(v T) {
	g.check()
	g.lock.value = v
}

// Ptr returns a pointer to the protected value for in-place updates.
// The pointer must not be used after Release.
func (g *WriteGuard[T]) Ptr() *T {
	g.check()
	return &g.lock.value
}

// Release gives up exclusive access. Only the first successful call has an
// effect.
//
// It panics if the lock state shows readers or no writer, or if the calling
// goroutine is not the recorded owner. Either means the lock is corrupted
// and other goroutines may already have seen torn state, so there is no
// error to return.
func (g *WriteGuard[T]) Release() {
	if g.released.Load() {
		return
	}
	// unlockWrite panics before touching the lock, so a failed release
	// leaves the guard live for its rightful owner.
	g.lock.unlockWrite()
	g.released.Store(true)
	if g.onRelease != nil {
		g.onRelease()
	}
}

func (g *WriteGuard[T]) check() {
	if g.released.Load() {
		panic("sharedlock: use of released write guard")
	}
}
