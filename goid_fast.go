//go:build go1.23 && !go1.26 && (amd64 || arm64)

package sharedlock

import "unsafe"

const hasFastGoid = true

// getg returns the current goroutine's runtime.g pointer.
// Implemented in goid_amd64.s and goid_arm64.s.
//
//go:noescape
func getg() unsafe.Pointer

// goidFast reads runtime.g.goid directly at its known offset.
func goidFast() uint64 {
	g := getg()
	if g == nil {
		return goidSlow()
	}
	return *(*uint64)(unsafe.Add(g, goidOffset))
}
