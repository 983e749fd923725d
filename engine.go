// Package randn fills vectors, matrices and batches of matrices with
// independent standard-normal draws, sampling in parallel on a bounded pool.
//
// Every call partitions its output into fixed-size chunks. Each chunk gets its
// own generator, keyed by a sub-seed derived from the call's root seed and the
// chunk index, and writes only its own range of the output buffer. Matrices
// are filled row-major: element (i, j) is draw i*cols + j.
package randn

import (
	"context"
	"fmt"
	"time"

	"github.com/fumitoshi0524/randn/internal/parallel"
	"github.com/fumitoshi0524/randn/rng"
	"github.com/fumitoshi0524/randn/tensor"
)

// Engine carries the pool and configuration calls run with. It holds no
// state between calls and is safe for concurrent use.
type Engine struct {
	cfg  Config
	pool *parallel.Pool
}

func New(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)
	pool := parallel.Default()
	if cfg.Workers > 0 {
		pool = parallel.NewPool(cfg.Workers)
	}
	return &Engine{cfg: cfg, pool: pool}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Workers() int {
	return e.pool.Workers()
}

// Vector returns size independent draws as a rank-1 tensor.
func (e *Engine) Vector(ctx context.Context, size int) (*tensor.Tensor, error) {
	started := time.Now()
	n, err := budget(e.cfg.MaxBytes, size)
	if err != nil {
		return nil, fmt.Errorf("vector %d: %w", size, err)
	}
	buf, err := e.draw(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("vector %d: %w", size, err)
	}
	e.logf("vector %d: %d chunks in %s", size, parallel.Chunks(n, e.cfg.Grain), time.Since(started))
	return tensor.FromVector(buf), nil
}

// Matrix returns a rows x cols matrix of independent draws, filled row-major.
func (e *Engine) Matrix(ctx context.Context, rows, cols int) (*tensor.Tensor, error) {
	started := time.Now()
	n, err := budget(e.cfg.MaxBytes, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrix %dx%d: %w", rows, cols, err)
	}
	buf, err := e.draw(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("matrix %dx%d: %w", rows, cols, err)
	}
	m, err := tensor.FromMatrix(rows, cols, buf)
	if err != nil {
		return nil, fmt.Errorf("matrix %dx%d: %w", rows, cols, err)
	}
	e.logf("matrix %dx%d: %d chunks in %s", rows, cols, parallel.Chunks(n, e.cfg.Grain), time.Since(started))
	return m, nil
}

// Tensor returns a tensor of the given shape filled with independent draws in
// row-major order.
func (e *Engine) Tensor(ctx context.Context, shape ...int) (*tensor.Tensor, error) {
	started := time.Now()
	n, err := budget(e.cfg.MaxBytes, shape...)
	if err != nil {
		return nil, fmt.Errorf("tensor %v: %w", shape, err)
	}
	buf, err := e.draw(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("tensor %v: %w", shape, err)
	}
	t, err := tensor.Adopt(buf, shape...)
	if err != nil {
		return nil, fmt.Errorf("tensor %v: %w", shape, err)
	}
	e.logf("tensor %v: %d chunks in %s", shape, parallel.Chunks(n, e.cfg.Grain), time.Since(started))
	return t, nil
}

// MatrixBatch returns sims independent rows x cols matrices, ordered by
// simulation index. Simulations are spread over the same pool their own
// fan-outs use. The whole batch is checked against the memory limit before
// any matrix is allocated.
func (e *Engine) MatrixBatch(ctx context.Context, rows, cols, sims int) (Batch, error) {
	started := time.Now()
	if _, err := budget(e.cfg.MaxBytes, rows, cols, sims); err != nil {
		return nil, fmt.Errorf("matrix batch %dx%dx%d: %w", rows, cols, sims, err)
	}
	seed, err := e.rootSeed()
	if err != nil {
		return nil, fmt.Errorf("matrix batch %dx%dx%d: %w", rows, cols, sims, err)
	}
	out := make(Batch, sims)
	err = e.pool.For(ctx, sims, 1, func(k, _, _ int) error {
		buf, err := e.sample(ctx, rows*cols, seed.Derive(uint64(k)))
		if err != nil {
			return err
		}
		m, err := tensor.FromMatrix(rows, cols, buf)
		if err != nil {
			return err
		}
		out[k] = m
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("matrix batch %dx%dx%d: %w", rows, cols, sims, err)
	}
	e.logf("matrix batch %dx%dx%d: %d workers in %s", rows, cols, sims, e.pool.Workers(), time.Since(started))
	return out, nil
}

func (e *Engine) draw(ctx context.Context, n int) ([]float64, error) {
	seed, err := e.rootSeed()
	if err != nil {
		return nil, err
	}
	return e.sample(ctx, n, seed)
}

func (e *Engine) rootSeed() (rng.Seed, error) {
	if e.cfg.Seeded {
		return rng.SeedFromUint64(e.cfg.Seed), nil
	}
	return rng.NewSeed(e.cfg.Entropy)
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Printf(format, args...)
	}
}
