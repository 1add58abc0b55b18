//go:build go1.25 && !go1.26 && (amd64 || arm64)

package sharedlock

// goidOffset is the offset of goid in runtime.g for Go 1.25, where gobuf
// shrank to 6 words:
//
//	stack 0, stackguard0 16, stackguard1 24, _panic 32, _defer 40, m 48,
//	sched (gobuf, 6 words) 56, syscallsp 104, syscallpc 112,
//	syscallbp 120, stktopsp 128, param 136, atomicstatus 144,
//	stackLock 148, goid 152
const goidOffset = 152
