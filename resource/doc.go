// Package resource implements a Controller for process-wide limits shared by
// weight tables.
//
// The Controller governs three resources:
//
//   - Memory: bytes of slot storage held by all tables (non-blocking, fail-fast)
//   - Workers: goroutines running concurrent sweeps over tables
//   - Sweep bandwidth: bytes per second touched by background sweeps
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for the hard limit and an atomic
// counter for usage. AcquireMemory never blocks; it returns
// ErrMemoryLimitExceeded immediately:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	w, err := weights.New(1<<18, 2, weights.WithMemoryController(rc))
//
// # Worker Limits
//
// Concurrent sweeps acquire one worker slot per chunk they process, so the
// total number of sweeping goroutines stays bounded even when several tables
// are swept at once.
//
// # Sweep Throttling
//
// A token bucket limits how many bytes per second background sweeps write,
// leaving memory bandwidth to the learners working on the same table.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource
