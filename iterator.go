package weights

// Slot is a cursor over consecutive slots, normally those of one bucket.
// Obtain one from Iterator.Begin and bound it with Iterator.End.
//
// A Slot does not check bounds. Reading or writing at a position outside the
// table panics like any out-of-range slice access.
type Slot struct {
	data []Weight
	pos  uint64
}

// Value returns the slot under the cursor.
func (s Slot) Value() Weight { return s.data[s.pos] }

// Ptr returns the address of the slot under the cursor.
func (s Slot) Ptr() *Weight { return &s.data[s.pos] }

// Set writes w to the slot under the cursor.
func (s Slot) Set(w Weight) { s.data[s.pos] = w }

// Position returns the flat position of the cursor in the table.
func (s Slot) Position() uint64 { return s.pos }

// Next moves the cursor one slot forward.
func (s *Slot) Next() { s.pos++ }

// Advance moves the cursor n slots forward.
func (s *Slot) Advance(n uint64) { s.pos += n }

// Add returns a cursor n slots past s.
func (s Slot) Add(n uint64) Slot { return Slot{data: s.data, pos: s.pos + n} }

// Equal reports whether both cursors point at the same position of the same
// storage block. Slot values are never compared.
func (s Slot) Equal(o Slot) bool {
	return s.pos == o.pos && sameBlock(s.data, o.data)
}

// Iterator is a cursor that moves a whole bucket (stride slots) per step.
// With stride 1 it walks every slot of the table.
//
// Like Slot, an Iterator does not check bounds; compare against the End
// cursor produced by the same table.
type Iterator struct {
	data   []Weight
	pos    uint64
	stride uint64
}

// Value returns the slot under the cursor.
func (it Iterator) Value() Weight { return it.data[it.pos] }

// Ptr returns the address of the slot under the cursor.
func (it Iterator) Ptr() *Weight { return &it.data[it.pos] }

// Set writes w to the slot under the cursor.
func (it Iterator) Set(w Weight) { it.data[it.pos] = w }

// Position returns the flat position of the cursor in the table.
func (it Iterator) Position() uint64 { return it.pos }

// Stride returns the number of slots the cursor moves per step.
func (it Iterator) Stride() uint64 { return it.stride }

// Next moves the cursor to the next bucket.
func (it *Iterator) Next() { it.pos += it.stride }

// Advance moves the cursor n buckets forward.
func (it *Iterator) Advance(n uint64) { it.pos += n * it.stride }

// Add returns a cursor n buckets past it.
func (it Iterator) Add(n uint64) Iterator {
	return Iterator{data: it.data, pos: it.pos + n*it.stride, stride: it.stride}
}

// Equal reports whether both cursors point at the same position of the same
// storage block.
func (it Iterator) Equal(o Iterator) bool {
	return it.pos == o.pos && sameBlock(it.data, o.data)
}

// Begin returns a Slot cursor at the current position.
func (it Iterator) Begin() Slot { return Slot{data: it.data, pos: it.pos} }

// End returns a Slot cursor offset slots past the current position, so that
// Begin..End visits the first offset slots of the bucket.
func (it Iterator) End(offset uint64) Slot { return Slot{data: it.data, pos: it.pos + offset} }

func sameBlock(a, b []Weight) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
