package sharedlock

import "runtime"

// goidFastOK is set at init when the fast path agrees with the stack-trace
// path; a runtime whose g layout moved silently falls back to the slow path.
var goidFastOK = hasFastGoid && checkFastGoid()

func checkFastGoid() bool {
	if goidFast() != goidSlow() {
		return false
	}
	ok := make(chan bool)
	go func() { ok <- goidFast() == goidSlow() }()
	return <-ok
}

// goid returns an opaque identity token for the calling goroutine.
//
// The token is non-zero and stable for the goroutine's lifetime, so zero can
// serve as the "no owner" sentinel. The runtime does not hand out the same
// ID twice in practice, but nothing guarantees it: a goroutine that exits
// while holding a write guard could in theory have its ID observed again,
// producing a missed self-deadlock report. That case is accepted.
func goid() uint64 {
	if goidFastOK {
		return goidFast()
	}
	id := goidSlow()
	if id == 0 {
		panic("sharedlock: unable to determine goroutine identity")
	}
	return id
}

// goidSlow reads the ID from the header line of the current goroutine's
// stack trace. It works on every Go release and architecture.
func goidSlow() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parseGoid(buf[:n])
}

// parseGoid extracts N from a stack header of the form
// "goroutine N [running]:". It returns 0 if the header is malformed.
func parseGoid(buf []byte) uint64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	var id uint64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
