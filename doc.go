// Package sharedlock provides SharedLock, a spin-based reader-writer lock
// that owns the value it protects, and Group, a set of such locks keyed by
// arbitrary comparable values.
//
// The lock state is a single 64-bit word: the top bit is the writer flag and
// the remaining bits count readers. Acquisition is a compare-and-swap loop
// that busy-waits without back-off, so the lock only suits critical sections
// of a few memory accesses. The goroutine holding the write side is recorded,
// which lets the lock report ErrDeadlock on re-entry instead of spinning
// forever against itself.
package sharedlock
