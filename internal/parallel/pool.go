package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many goroutines work on fan-outs at once. The goroutine
// calling For always works on its own loop; the remaining workers-1 slots are
// tokens shared by every For running on the pool, including nested ones.
type Pool struct {
	workers int
	helpers *semaphore.Weighted
}

// NewPool returns a pool of the given size. Sizes <= 0 mean GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		workers: workers,
		helpers: semaphore.NewWeighted(int64(workers - 1)),
	}
}

// Workers reports the maximum number of goroutines one For call may use.
func (p *Pool) Workers() int {
	return p.workers
}

// Chunks reports how many chunks For cuts [0, n) into for the given grain.
func Chunks(n, grain int) int {
	if n <= 0 {
		return 0
	}
	if grain <= 0 {
		grain = n
	}
	return (n + grain - 1) / grain
}

// For cuts [0, n) into consecutive chunks of grain elements and calls fn once
// per chunk with the chunk index and its half-open range. The layout depends
// only on n and grain. Chunks are claimed dynamically by the caller and by any
// helper that could take a free token without waiting, so a For nested inside
// another For on the same pool degrades to running inline instead of
// deadlocking. For returns after every claimed chunk has finished; the first
// error stops unclaimed chunks from starting and is returned.
func (p *Pool) For(ctx context.Context, n, grain int, fn func(chunk, start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if grain <= 0 {
		grain = n
	}
	chunks := Chunks(n, grain)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	var next atomic.Int64
	work := func() error {
		for {
			c := int(next.Add(1) - 1)
			if c >= chunks {
				return nil
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			start := c * grain
			end := min(start+grain, n)
			if err := fn(c, start, end); err != nil {
				return err
			}
		}
	}

	for i := 0; i < min(chunks, p.workers)-1; i++ {
		if !p.helpers.TryAcquire(1) {
			break
		}
		g.Go(func() error {
			defer p.helpers.Release(1)
			return work()
		})
	}

	err := work()
	if err != nil {
		cancel()
	}
	// A helper's failure cancels gctx, so the caller may only have seen the
	// cancellation; report the helper's error instead.
	werr := g.Wait()
	if err == nil || (werr != nil && isContextErr(err) && !isContextErr(werr)) {
		err = werr
	}
	return err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
