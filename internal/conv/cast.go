package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// ShiftLeft returns v << shift, or an error if any set bit would be shifted out.
func ShiftLeft(v uint64, shift uint32) (uint64, error) {
	if v == 0 {
		return 0, nil
	}
	if shift >= 64 || bits.LeadingZeros64(v) < int(shift) {
		return 0, fmt.Errorf("integer overflow: %d << %d does not fit in uint64", v, shift)
	}
	return v << shift, nil
}

// MulUint64 returns a * b, or an error on overflow.
func MulUint64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d does not fit in uint64", a, b)
	}
	return lo, nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Uint64ToInt64 converts uint64 to int64 safely.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
