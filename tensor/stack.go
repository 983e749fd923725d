package tensor

import (
	"fmt"

	"github.com/fumitoshi0524/randn/internal/parallel"
)

// Stack copies equally shaped tensors into one tensor with a new leading
// axis: Stack(a, b) has shape [2, a.Shape()...] and its k-th slab is the k-th
// input.
func Stack(tensors ...*Tensor) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("%w: stack requires at least one tensor", ErrInvalidShape)
	}
	base := tensors[0]
	for k, t := range tensors[1:] {
		if !equalShapes(t.shape, base.shape) {
			return nil, fmt.Errorf("%w: tensor %d has shape %v, want %v", ErrShapeMismatch, k+1, t.shape, base.shape)
		}
	}
	block := base.Numel()
	shape := append([]int{len(tensors)}, base.shape...)
	out := Zeros(shape...)
	parallel.For(len(tensors), func(start, end int) {
		for k := start; k < end; k++ {
			copy(out.data[k*block:(k+1)*block], tensors[k].data)
		}
	})
	return out, nil
}

func equalShapes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
