// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Weight blocks start on a 64-byte boundary so the first bucket of a table
// never straddles a cache line.
//
// # Views
//
// Float32s reinterprets raw bytes (for example an mmap region) as float32
// slots without copying.
package mem
