//go:build race

package opt

// Race_ reports whether the race detector is enabled.
// Under the race detector every atomic access is instrumented, so spinning
// is far slower and long-running stress loops should be shortened.
const Race_ = true
