package weights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/weights/internal/conv"
	"github.com/hupe1980/weights/internal/mem"
	"github.com/hupe1980/weights/internal/mmap"
)

// Parameters owns a fixed-size weight table. It is the only handle that may
// promote or release the storage; hand out a View to code that needs the
// table by value.
//
// The zero value is an empty table: NotNull reports false, iteration visits
// nothing and addressing with At panics.
//
// Parameters performs no locking. Concurrent writers to one slot race exactly
// as they would on a plain slice; callers own the synchronization.
type Parameters struct {
	view

	store  *backing
	opts   options
	logger *Logger
}

// New allocates a zeroed table of length buckets with 1<<strideShift slots each.
//
// length must be a non-zero power of two, and length<<strideShift must be
// addressable on this platform; otherwise New returns *ErrInvalidConfiguration.
// If a memory controller is configured and its limit would be exceeded, New
// returns an error wrapping ErrAllocationFailed.
func New(length uint64, strideShift uint32, optFns ...Option) (*Parameters, error) {
	if !conv.IsPowerOfTwo(length) {
		return nil, invalidConfig("length", length, "must be a non-zero power of two", nil)
	}

	slots, err := conv.ShiftLeft(length, strideShift)
	if err != nil {
		return nil, invalidConfig("stride shift", uint64(strideShift), "length << stride shift overflows", err)
	}
	n, err := conv.Uint64ToInt(slots)
	if err != nil {
		return nil, invalidConfig("length", length, "table is not addressable", err)
	}
	bytes, err := tableBytes(slots)
	if err != nil {
		return nil, invalidConfig("length", length, "table is not addressable", err)
	}

	o := applyOptions(optFns)
	p := &Parameters{
		opts:   o,
		logger: o.logger.WithTable(slots, strideShift),
	}

	ctx := context.Background()
	start := time.Now()

	if err := o.controller.AcquireMemory(bytes); err != nil {
		err = fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		o.metricsCollector.RecordAllocate(bytes, time.Since(start), err)
		p.logger.LogAllocate(ctx, bytes, err)
		return nil, err
	}

	p.store = allocPrivate(n)
	p.view = view{
		data:        p.store.data,
		mask:        slots - 1,
		strideShift: strideShift,
	}

	o.metricsCollector.RecordAllocate(bytes, time.Since(start), nil)
	p.logger.LogAllocate(ctx, bytes, nil)

	return p, nil
}

// View returns a non-owning handle on the table. The View must not outlive p.
func (p *Parameters) View() View {
	return View{view: &p.view}
}

// Shared reports whether the table lives in shared memory.
func (p *Parameters) Shared() bool {
	return p.store != nil && p.store.kind == sharedBacking
}

// SetStrideShift replaces the recorded stride shift. Storage is neither
// reallocated nor rearranged and the mask is kept, so only call this when no
// slot contents depend on the old bucket layout. Views see the new value;
// cursors taken earlier keep the old stride. Shifts of 64 or more make the stride zero and break iteration.
func (p *Parameters) SetStrideShift(strideShift uint32) {
	p.strideShift = strideShift
}

// Share moves the table into an anonymous shared memory mapping that child
// processes forked afterwards see and modify in place. length must be the
// bucket count the table was built with. Contents, Mask and StrideShift are
// preserved and Views follow the table; slot pointers, cursors and slices
// taken before Share are stale.
//
// Share is a one-way transition and may only succeed once. On failure the
// table is left untouched in private memory; callers that rely on peers
// attaching to the table should treat an ErrShareFailed as fatal.
// Share must not run concurrently with any other use of the table.
func (p *Parameters) Share(length uint64) error {
	if p.store == nil {
		return ErrEmpty
	}
	if p.store.kind == sharedBacking {
		return ErrAlreadyShared
	}

	slots, err := conv.ShiftLeft(length, p.strideShift)
	if err != nil || slots != p.Len() {
		return invalidConfig("length", length,
			fmt.Sprintf("length << %d must equal the table's %d slots", p.strideShift, p.Len()), err)
	}

	bytes := p.bytes()
	start := time.Now()
	err = p.share(bytes)
	p.metrics().RecordShare(bytes, time.Since(start), err)
	p.log().LogShare(context.Background(), bytes, err)

	return err
}

func (p *Parameters) share(bytes int64) error {
	rc := p.opts.controller

	// Both blocks exist while the contents are copied.
	if err := rc.AcquireMemory(bytes); err != nil {
		return fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	next, err := mapShared(len(p.data))
	if err != nil {
		rc.ReleaseMemory(bytes)
		if errors.Is(err, mmap.ErrUnsupported) {
			return fmt.Errorf("%w: %w", ErrSharedUnsupported, err)
		}
		return fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	copy(next.data, p.store.data)

	prev := p.store
	p.store = next
	p.data = next.data

	rc.ReleaseMemory(bytes)
	if err := prev.release(); err != nil {
		// The table already lives in shared memory; a leaked old block is not fatal.
		p.log().LogRelease(context.Background(), bytes, prev.kind == sharedBacking, err)
	}

	return nil
}

// Close releases the table's storage. It is idempotent; afterwards the table
// is empty: Views see no storage and every pointer, cursor or slice taken
// earlier is stale.
func (p *Parameters) Close() error {
	if p.store == nil {
		return nil
	}

	bytes := p.bytes()
	shared := p.Shared()

	err := p.store.release()
	p.opts.controller.ReleaseMemory(bytes)
	p.store = nil
	p.view = view{}

	p.metrics().RecordRelease(bytes, shared)
	p.log().LogRelease(context.Background(), bytes, shared, err)

	return err
}

// Stats describes a table at one point in time.
type Stats struct {
	Slots       uint64
	Buckets     uint64
	StrideShift uint32
	Bytes       int64
	Shared      bool
}

// Stats returns the table's geometry and phase.
func (p *Parameters) Stats() Stats {
	return Stats{
		Slots:       p.Len(),
		Buckets:     p.NumBuckets(),
		StrideShift: p.strideShift,
		Bytes:       p.bytes(),
		Shared:      p.Shared(),
	}
}

func (p *Parameters) String() string {
	phase := "empty"
	if p.store != nil {
		phase = p.store.kind.String()
	}
	return fmt.Sprintf("Parameters{slots: %d, stride: %d, mask: %#x, memory: %s}",
		p.Len(), p.Stride(), p.mask, phase)
}

func (p *Parameters) bytes() int64 {
	// Len was validated by New, so this cannot overflow.
	b, _ := tableBytes(p.Len())
	return b
}

func (p *Parameters) metrics() MetricsCollector {
	if p.opts.metricsCollector == nil {
		return NoopMetricsCollector{}
	}
	return p.opts.metricsCollector
}

func (p *Parameters) log() *Logger {
	if p.logger == nil {
		return NoopLogger()
	}
	return p.logger
}

func tableBytes(slots uint64) (int64, error) {
	b, err := conv.MulUint64(slots, uint64(mem.Float32Size))
	if err != nil {
		return 0, err
	}
	if _, err := conv.Uint64ToInt(b); err != nil {
		return 0, err
	}
	return conv.Uint64ToInt64(b)
}
