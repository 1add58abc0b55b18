package sharedlock

import (
	"github.com/llxisdsh/pb"
)

// Group allows shared Reader-Writer locking on arbitrary keys.
// Each key gets its own SharedLock[struct{}] with the same semantics,
// including ErrDeadlock on same-goroutine re-entry.
//
// Features:
//   - Read for shared access, Write for exclusive access.
//   - Infinite Keys & Auto-Cleanup: an entry lives only while some
//     goroutine holds or waits for its lock.
//
// Usage:
//
//	var group Group[string]
//
//	g, err := group.Write("config")
//	if err != nil {
//		return err
//	}
//	write(config)
//	g.Release()
//
// The entry table is a pb.MapOf, which uses plain loads on TSO
// architectures. The race detector reports those when a Group is used
// concurrently; the reports come from the map, not from the locks.
type Group[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *groupEntry]
}

type groupEntry struct {
	lock SharedLock[struct{}]
	ref  int32
}

// Read acquires shared access for k.
func (g *Group[K]) Read(k K) (*ReadGuard[struct{}], error) {
	e := g.acquire(k)
	rg, err := e.lock.Read()
	if err != nil {
		g.release(k)
		return nil, err
	}
	rg.onRelease = func() { g.release(k) }
	return rg, nil
}

// Write acquires exclusive access for k.
func (g *Group[K]) Write(k K) (*WriteGuard[struct{}], error) {
	e := g.acquire(k)
	wg, err := e.lock.Write()
	if err != nil {
		g.release(k)
		return nil, err
	}
	wg.onRelease = func() { g.release(k) }
	return wg, nil
}

// acquire returns the entry for k, creating it if needed, and takes a
// reference on it.
func (g *Group[K]) acquire(k K) *groupEntry {
	e, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry]) (*pb.EntryOf[K, *groupEntry], *groupEntry, bool) {
			if l != nil {
				l.Value.ref++
				return l, l.Value, true
			}
			e := &groupEntry{ref: 1}
			return &pb.EntryOf[K, *groupEntry]{Value: e}, e, false
		},
	)
	return e
}

// release drops a reference on the entry for k and deletes the entry once
// nobody holds it.
func (g *Group[K]) release(k K) {
	g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry]) (*pb.EntryOf[K, *groupEntry], *groupEntry, bool) {
			if l == nil {
				return nil, nil, false
			}
			l.Value.ref--
			if l.Value.ref <= 0 {
				return nil, nil, true
			}
			return l, l.Value, true
		},
	)
}
