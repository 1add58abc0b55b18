//go:build go1.23 && !go1.25 && (amd64 || arm64)

package sharedlock

// goidOffset is the offset of goid in runtime.g for Go 1.23 and 1.24:
//
//	stack 0, stackguard0 16, stackguard1 24, _panic 32, _defer 40, m 48,
//	sched (gobuf, 7 words) 56, syscallsp 112, syscallpc 120,
//	syscallbp 128, stktopsp 136, param 144, atomicstatus 152,
//	stackLock 156, goid 160
const goidOffset = 160
