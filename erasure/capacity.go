package erasure

import "unsafe"

// Capacity is the inline state available to a holder: one machine word.
// Holders that do not fit fail to compile below.
const Capacity = unsafe.Sizeof(uintptr(0))

// Compile-time capacity checks. A holder wider than Capacity turns one of
// these constants negative, which overflows uintptr and stops the build.
const (
	_ = Capacity - unsafe.Sizeof(emptyHolder{})
	_ = Capacity - unsafe.Sizeof(valueHolder[[64]byte]{})
	_ = Capacity - unsafe.Sizeof(mutableHolder[[64]byte]{})
	_ = Capacity - unsafe.Sizeof(immutableHolder[[64]byte]{})
	_ = Capacity - unsafe.Sizeof(transferHolder[[64]byte]{})

	// A slot is the holder plus its dispatch word.
	_ = 2*Capacity - unsafe.Sizeof(Slot{})
)
