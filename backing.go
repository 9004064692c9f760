package weights

import (
	"github.com/hupe1980/weights/internal/mem"
	"github.com/hupe1980/weights/internal/mmap"
)

// backingKind tags where a table's slots live.
type backingKind uint8

const (
	// privateBacking is an aligned block on the Go heap, private to the process.
	privateBacking backingKind = iota
	// sharedBacking is an anonymous MAP_SHARED mapping inherited across fork.
	sharedBacking
)

func (k backingKind) String() string {
	switch k {
	case privateBacking:
		return "private"
	case sharedBacking:
		return "shared"
	default:
		return "unknown"
	}
}

// backing owns one block of slot storage. Release dispatches on kind; a
// private block is handed back to the garbage collector, a shared one is unmapped.
type backing struct {
	kind    backingKind
	data    []Weight
	mapping *mmap.Mapping // sharedBacking only
}

func allocPrivate(slots int) *backing {
	return &backing{
		kind: privateBacking,
		data: mem.AllocAlignedFloat32(slots),
	}
}

func mapShared(slots int) (*backing, error) {
	m, err := mmap.MapShared(slots * mem.Float32Size)
	if err != nil {
		return nil, err
	}

	// Hashed feature indices hit the table at random; readahead only wastes pages.
	_ = m.Advise(mmap.AccessRandom)

	return &backing{
		kind:    sharedBacking,
		data:    mem.Float32s(m.Bytes()),
		mapping: m,
	}, nil
}

func (b *backing) release() error {
	b.data = nil
	if b.kind == sharedBacking && b.mapping != nil {
		return b.mapping.Close()
	}
	return nil
}
