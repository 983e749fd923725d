package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestForCoversEntireRange(t *testing.T) {
	n := 37
	counts := make([]int32, n)
	For(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})
	for i, c := range counts {
		if c != 1 {
			t.Fatalf("expected index %d to be processed once, got %d", i, c)
		}
	}
}

func TestForNoopOnNonPositive(t *testing.T) {
	called := false
	For(0, func(start, end int) {
		called = true
	})
	if called {
		t.Fatalf("expected callback to remain unused")
	}
}

func TestNewPoolDefaultsToGOMAXPROCS(t *testing.T) {
	if got, want := NewPool(0).Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Fatalf("expected %d workers, got %d", want, got)
	}
	if got := NewPool(3).Workers(); got != 3 {
		t.Fatalf("expected 3 workers, got %d", got)
	}
}

func TestPoolForChunkLayout(t *testing.T) {
	type span struct{ start, end int }
	var mu sync.Mutex
	seen := map[int]span{}
	err := NewPool(4).For(context.Background(), 10, 4, func(chunk, start, end int) error {
		mu.Lock()
		seen[chunk] = span{start, end}
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("For failed: %v", err)
	}
	want := map[int]span{0: {0, 4}, 1: {4, 8}, 2: {8, 10}}
	if len(seen) != len(want) {
		t.Fatalf("expected %d chunks, got %v", len(want), seen)
	}
	for c, s := range want {
		if seen[c] != s {
			t.Fatalf("chunk %d: expected %v, got %v", c, s, seen[c])
		}
	}
	if Chunks(10, 4) != 3 || Chunks(0, 4) != 0 || Chunks(5, 0) != 1 {
		t.Fatalf("unexpected chunk counts")
	}
}

func TestPoolForBoundsNestedConcurrency(t *testing.T) {
	const workers = 3
	p := NewPool(workers)
	var active, peak, leaves atomic.Int64
	err := p.For(context.Background(), 8, 1, func(_, _, _ int) error {
		return p.For(context.Background(), 200, 10, func(_, start, end int) error {
			cur := active.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(50 * time.Microsecond)
			leaves.Add(int64(end - start))
			active.Add(-1)
			return nil
		})
	})
	if err != nil {
		t.Fatalf("nested For failed: %v", err)
	}
	if got := leaves.Load(); got != 8*200 {
		t.Fatalf("expected %d elements visited, got %d", 8*200, got)
	}
	if got := peak.Load(); got > workers {
		t.Fatalf("expected at most %d concurrent chunks, saw %d", workers, got)
	}
}

func TestPoolForPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := NewPool(4).For(context.Background(), 100, 5, func(chunk, _, _ int) error {
		if chunk == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPoolForCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewPool(2).For(ctx, 10, 1, func(_, _, _ int) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("expected no chunk to run after cancellation")
	}
}
