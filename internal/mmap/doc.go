// Package mmap provides anonymous memory mappings that outlive a fork.
//
// # Overview
//
// MapShared creates a read-write, anonymous MAP_SHARED region. Pages of the
// region are not copied on fork: parent and children read and write the same
// physical memory. This is what lets several worker processes average the
// same weight table in place.
//
// # Usage
//
//	m, err := mmap.MapShared(size)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_SHARED|MAP_ANON, madvise(2) for hints
//   - Windows and other non-unix targets: MapShared returns ErrUnsupported
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must ensure
// no goroutine touches Bytes() after Close returns.
package mmap
