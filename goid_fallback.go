//go:build !go1.23 || go1.26 || !(amd64 || arm64)

package sharedlock

// The runtime.g layout is only known for the releases and architectures
// covered by goid_fast.go.
const hasFastGoid = false

func goidFast() uint64 {
	return goidSlow()
}
