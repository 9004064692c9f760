// Package conv provides checked integer arithmetic and conversions.
//
// These functions perform bounds checking to prevent silent overflow when
// sizing tables from a (length, shift) pair and when converting between
// Go's platform-dependent int and fixed-width types.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices over an already validated table), use direct type casts instead.
package conv
