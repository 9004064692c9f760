package weights

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Weight is the numeric type of one slot.
type Weight = float32

// Initializer is called once per bucket by SetDefault. it points at the
// bucket's first slot, index is the bucket's flat position and stride the
// number of slots per bucket. it is a copy: moving it does not affect the sweep.
type Initializer func(it *Iterator, index, stride uint64)

// view holds the addressing state shared by Parameters and View.
type view struct {
	data        []Weight
	mask        uint64
	strideShift uint32
}

// View is a non-owning handle on a table. Views are cheap to copy and never
// release anything; pass a View where code needs the table by value.
//
// A View reads the owner's addressing state on every call, so it follows
// Share and SetStrideShift. After Close it sees an empty table. Pointers,
// cursors and slices obtained through a View are still stale after Share or
// Close. The zero View has no table and panics on use.
type View struct {
	*view
}

// NotNull reports whether the table has storage.
func (v view) NotNull() bool { return v.mask > 0 && v.data != nil }

// Mask returns the index mask, Len()-1 for a non-empty table.
func (v view) Mask() uint64 { return v.mask }

// StrideShift returns log2 of the number of slots per bucket.
func (v view) StrideShift() uint32 { return v.strideShift }

// Stride returns the number of slots per bucket.
func (v view) Stride() uint64 { return 1 << v.strideShift }

// Len returns the total number of slots.
func (v view) Len() uint64 { return uint64(len(v.data)) }

// NumBuckets returns the number of buckets (Len / Stride).
func (v view) NumBuckets() uint64 { return v.Len() >> v.strideShift }

// Slice returns the backing slots. The slice aliases the table and is
// invalidated by Share and Close.
func (v view) Slice() []Weight { return v.data }

// At returns the slot for index i folded into range by the mask. Indices
// that differ by a multiple of Len() share a slot.
//
// At panics on an empty table.
func (v view) At(i uint64) *Weight { return &v.data[i&v.mask] }

// Get returns the value of the slot for index i.
func (v view) Get(i uint64) Weight { return v.data[i&v.mask] }

// Set writes w to the slot for index i.
func (v view) Set(i uint64, w Weight) { v.data[i&v.mask] = w }

// Begin returns a cursor over every slot in address order.
func (v view) Begin() Iterator { return Iterator{data: v.data, stride: 1} }

// End returns the cursor one past the last slot (position Mask()+1).
func (v view) End() Iterator { return Iterator{data: v.data, pos: v.Len(), stride: 1} }

// BeginAt returns a cursor that visits slot offset of every bucket.
// offset must be below Stride.
func (v view) BeginAt(offset uint64) Iterator {
	return Iterator{data: v.data, pos: offset, stride: v.Stride()}
}

// EndAt returns the end cursor matching BeginAt(offset).
func (v view) EndAt(offset uint64) Iterator {
	return Iterator{data: v.data, pos: v.Len() + offset, stride: v.Stride()}
}

// All yields every slot with its flat position.
func (v view) All() iter.Seq2[uint64, *Weight] {
	return func(yield func(uint64, *Weight) bool) {
		end := v.End()
		for it := v.Begin(); !it.Equal(end); it.Next() {
			if !yield(it.Position(), it.Ptr()) {
				return
			}
		}
	}
}

// Buckets yields slot offset of every bucket together with the flat
// position of the bucket's first slot.
func (v view) Buckets(offset uint64) iter.Seq2[uint64, *Weight] {
	return func(yield func(uint64, *Weight) bool) {
		end := v.EndAt(offset)
		for it := v.BeginAt(offset); !it.Equal(end); it.Next() {
			if !yield(it.Position()-offset, it.Ptr()) {
				return
			}
		}
	}
}

// SetDefault runs fn once for every bucket, in bucket order, with the
// cursor on the bucket's first slot. Indices start at 0 and grow by Stride.
func (v view) SetDefault(fn Initializer) {
	stride := v.Stride()
	end := v.EndAt(0)
	var index uint64
	for it := v.BeginAt(0); !it.Equal(end); it.Next() {
		cur := it
		fn(&cur, index, stride)
		index += stride
	}
}

// SetZero clears slot offset of every bucket and leaves all other slots alone.
func (v view) SetZero(offset uint64) error {
	if err := v.checkOffset(offset); err != nil {
		return err
	}
	end := v.EndAt(offset)
	for it := v.BeginAt(offset); !it.Equal(end); it.Next() {
		it.Set(0)
	}
	return nil
}

// NonZero returns the numbers of the buckets whose slot offset is not zero.
func (v view) NonZero(offset uint64) (*roaring64.Bitmap, error) {
	if err := v.checkOffset(offset); err != nil {
		return nil, err
	}
	rb := roaring64.New()
	end := v.EndAt(offset)
	var bucket uint64
	for it := v.BeginAt(offset); !it.Equal(end); it.Next() {
		if it.Value() != 0 {
			rb.Add(bucket)
		}
		bucket++
	}
	return rb, nil
}

// zeroRange clears slot offset of buckets [lo, hi).
func (v view) zeroRange(offset, lo, hi uint64) {
	start := v.BeginAt(offset)
	end := start.Add(hi)
	for it := start.Add(lo); !it.Equal(end); it.Next() {
		it.Set(0)
	}
}

func (v view) checkOffset(offset uint64) error {
	if offset >= v.Stride() {
		return invalidConfig("offset", offset, fmt.Sprintf("must be below stride %d", v.Stride()), nil)
	}
	return nil
}
