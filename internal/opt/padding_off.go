//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !sharedlock_disable_padding && !sharedlock_enable_padding

package opt

// PaddingMult_ disables cache-line padding of the lock state word.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PaddingMult_ = 0
