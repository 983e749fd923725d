package randn

import (
	"context"

	"github.com/fumitoshi0524/randn/rng"
)

// sample returns n independent draws. Chunk c of the buffer is written only by
// the task that owns it, through a slice capped at the chunk's end, with a
// generator keyed by seed.Derive(c) that lives for that task alone.
func (e *Engine) sample(ctx context.Context, n int, seed rng.Seed) ([]float64, error) {
	buf := make([]float64, n)
	err := e.pool.For(ctx, n, e.cfg.Grain, func(chunk, start, end int) error {
		seed.Derive(uint64(chunk)).Generator().Fill(buf[start:end:end])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}
