//go:build sharedlock_disable_padding && !sharedlock_enable_padding

package opt

// PaddingMult_ is force-disabled via the sharedlock_disable_padding build tag.
// Use: go build -tags=sharedlock_disable_padding
const PaddingMult_ = 0
