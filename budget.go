package randn

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/dustin/go-humanize"

	"github.com/fumitoshi0524/randn/tensor"
)

const bytesPerValue = 8

// maxAllocBytes is the largest single allocation the runtime accepts: 48
// address bits on 64-bit platforms, the int range on 32-bit ones. Larger
// requests make makeslice panic instead of failing.
const maxAllocBytes = min(1<<48, math.MaxInt)

// maxValues is the largest float64 slice length the runtime can allocate.
const maxValues = maxAllocBytes / bytesPerValue

// budget checks that a request for prod(dims) float64 values can be served
// and returns that count. It never allocates.
func budget(limit uint64, dims ...int) (int, error) {
	if _, err := tensor.Numel(dims...); err != nil {
		return 0, err
	}
	for _, d := range dims {
		if d == 0 {
			return 0, nil
		}
	}
	var total uint64 = 1
	for _, d := range dims {
		hi, lo := bits.Mul64(total, uint64(d))
		if hi != 0 {
			return 0, fmt.Errorf("%w: %v values overflow the address space", ErrAllocation, dims)
		}
		total = lo
	}
	if total > maxValues {
		return 0, fmt.Errorf("%w: %v needs %d values, more than addressable", ErrAllocation, dims, total)
	}
	if need := total * bytesPerValue; limit > 0 && need > limit {
		return 0, fmt.Errorf("%w: %v needs %s, limit is %s", ErrAllocation, dims,
			humanize.IBytes(need), humanize.IBytes(limit))
	}
	return int(total), nil
}
