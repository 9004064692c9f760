// Package weights provides the fixed-size slot table behind an online linear
// learner.
//
// A table holds length buckets of 1<<strideShift float32 slots each: the
// weight itself plus whatever per-feature state the update rule keeps
// (gradient sums, normalizers, ...). Feature indices come from a hash and are
// folded into range with a mask, so any 64-bit index addresses a slot in O(1)
// and colliding features simply share it.
//
// # Quick Start
//
//	w, err := weights.New(1<<18, 2) // 2^18 buckets, 4 slots per bucket
//	if err != nil { ... }
//	defer w.Close()
//
//	w.SetDefault(weights.Slots(0, 1))   // weight 0, adaptive state 1
//	*w.At(h << w.StrideShift()) += 0.5  // h is a hashed feature index
//
// # Iteration
//
// Begin/End walk every slot. BeginAt/EndAt walk one slot per bucket; the
// Iterator they return exposes Begin/End to walk inside the current bucket:
//
//	end := w.EndAt(0)
//	for it := w.BeginAt(0); !it.Equal(end); it.Next() {
//	    inner := it.End(w.Stride())
//	    for s := it.Begin(); !s.Equal(inner); s.Next() {
//	        _ = s.Value()
//	    }
//	}
//
// All and Buckets offer the same walks as range-over-func iterators.
//
// # Shared Memory
//
// Share moves the table into an anonymous MAP_SHARED mapping exactly once.
// Processes forked afterwards read and write the same physical slots, which
// is how parallel learners average a model without copying it:
//
//	if err := w.Share(1 << 18); err != nil {
//	    log.Fatal(err) // peers cannot coordinate without the mapping
//	}
//
// Mask and StrideShift do not change and Views follow the table, but any
// pointer, cursor or slice taken before Share refers to the old block.
//
// # Ownership
//
// *Parameters is the single owner and the only handle that can Share or
// Close. View is a copyable, non-owning handle for code that needs the table
// by value; it never frees storage and must not outlive its owner. After Close
// a View sees an empty table, so addressing through it panics like indexing
// an empty slice.
package weights
