package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used in structure padding to prevent false sharing.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})

// WordPad_ is the number of bytes that follow a 64-bit atomic word so the
// next field starts on a fresh cache line. It is 0 when padding is disabled.
const WordPad_ = (CacheLineSize_ - unsafe.Sizeof(uint64(0))%CacheLineSize_) % CacheLineSize_ * PaddingMult_
