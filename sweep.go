package weights

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/weights/internal/mem"
)

// minSweepChunk keeps small tables from being split into tiny goroutines.
const minSweepChunk = 1 << 12

// SetZeroConcurrent clears slot offset of every bucket using up to workers
// goroutines (GOMAXPROCS if workers <= 0). The result equals SetZero.
//
// With a memory controller configured, every chunk also takes a worker slot
// and sweep bandwidth from it. If ctx is canceled the sweep stops between
// chunks and returns the context error; buckets already cleared stay cleared.
func (p *Parameters) SetZeroConcurrent(ctx context.Context, offset uint64, workers int) error {
	if err := p.checkOffset(offset); err != nil {
		return err
	}

	start := time.Now()
	buckets := p.NumBuckets()
	err := p.sweep(ctx, buckets, workers, func(lo, hi uint64) {
		p.zeroRange(offset, lo, hi)
	})
	p.metrics().RecordSweep(buckets, time.Since(start), err)

	return err
}

func (p *Parameters) sweep(ctx context.Context, buckets uint64, workers int, fn func(lo, hi uint64)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := max((buckets+uint64(workers)-1)/uint64(workers), minSweepChunk)
	rc := p.opts.controller

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var scheduled uint64
	for lo := uint64(0); lo < buckets; lo += chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+chunk, buckets)
		scheduled = hi
		g.Go(func() error {
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			if err := rc.AcquireSweep(gctx, int(hi-lo)*mem.Float32Size); err != nil { //nolint:gosec // chunk bounded by table size
				return err
			}
			fn(lo, hi)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if scheduled < buckets {
		return ctx.Err()
	}
	return nil
}
