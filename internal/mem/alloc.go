package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of allocated blocks (one cache line).
const Alignment = 64

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte alignment.
// It returns nil for non-positive sizes.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+size]
}

// AllocAlignedFloat32 allocates a zeroed float32 slice of n elements with 64-byte alignment.
func AllocAlignedFloat32(n int) []float32 {
	if n <= 0 {
		return nil
	}
	return Float32s(AllocAligned(n * Float32Size))
}

// Float32Size is the size of one float32 slot in bytes.
const Float32Size = int(unsafe.Sizeof(float32(0)))

// Float32s reinterprets b as a slice of float32 without copying.
// len(b) is truncated to a multiple of Float32Size. The caller must keep b's
// backing memory alive for as long as the result is used, and b must be
// 4-byte aligned (heap blocks from AllocAligned and mmap regions are).
func Float32s(b []byte) []float32 {
	n := len(b) / Float32Size
	if n == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&b[0])            //nolint:gosec // reinterpreting an aligned block
	return unsafe.Slice((*float32)(ptr), n) //nolint:gosec // reinterpreting an aligned block
}
