package parallel

import (
	"context"
	"sync"
)

var defaultPool = sync.OnceValue(func() *Pool { return NewPool(0) })

// Default returns the process-wide pool shared by every caller that does not
// bring its own. Nested fan-outs should go through the same pool.
func Default() *Pool {
	return defaultPool()
}

// For splits [0, n) into one contiguous range per worker of the default pool
// and blocks until fn has run on all of them.
func For(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	p := Default()
	grain := (n + p.Workers() - 1) / p.Workers()
	_ = p.For(context.Background(), n, grain, func(_, start, end int) error {
		fn(start, end)
		return nil
	})
}
