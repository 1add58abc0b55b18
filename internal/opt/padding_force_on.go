//go:build sharedlock_enable_padding

package opt

// PaddingMult_ is force-enabled via the sharedlock_enable_padding build tag.
// Use: go build -tags=sharedlock_enable_padding
const PaddingMult_ = 1
