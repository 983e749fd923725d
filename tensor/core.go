// Package tensor holds the dense row-major containers the generators fill.
// Element offsets follow the last index fastest: for a [rows, cols] tensor,
// element (i, j) lives at i*cols + j of the backing slice.
package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch reports a buffer whose length is not the product of
	// the requested dimensions, or tensors whose shapes disagree.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidShape reports a missing shape or a negative dimension.
	ErrInvalidShape = errors.New("invalid shape")
)

type Tensor struct {
	data    []float64
	shape   []int
	strides []int
}

// New copies data into a tensor of the given shape.
func New(data []float64, shape ...int) (*Tensor, error) {
	return newTensor(append([]float64{}, data...), shape)
}

func MustNew(data []float64, shape ...int) *Tensor {
	t, err := New(data, shape...)
	if err != nil {
		panic(err)
	}
	return t
}

// Adopt wraps data in a tensor without copying it. The caller hands over the
// slice and must not touch it afterwards.
func Adopt(data []float64, shape ...int) (*Tensor, error) {
	if data == nil {
		data = []float64{}
	}
	return newTensor(data, shape)
}

func newTensor(data []float64, shape []int) (*Tensor, error) {
	total, err := Numel(shape...)
	if err != nil {
		return nil, err
	}
	if total != len(data) {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), shape)
	}
	return &Tensor{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: makeStrides(shape),
	}, nil
}

// Numel returns the element count of a shape. Zero dimensions are allowed.
func Numel(shape ...int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: shape is required", ErrInvalidShape)
	}
	total := 1
	for _, dim := range shape {
		if dim < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", ErrInvalidShape, shape)
		}
		total *= dim
	}
	return total, nil
}

func Zeros(shape ...int) *Tensor {
	size, err := Numel(shape...)
	if err != nil {
		panic(err)
	}
	return MustNew(make([]float64, size), shape...)
}

func (t *Tensor) Clone() *Tensor {
	if t == nil {
		return nil
	}
	return &Tensor{
		data:    append([]float64{}, t.data...),
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
	}
}

func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

func (t *Tensor) Rank() int {
	return len(t.shape)
}

func (t *Tensor) Numel() int {
	return len(t.data)
}

// Data returns a copy of the values in row-major order.
func (t *Tensor) Data() []float64 {
	return append([]float64{}, t.data...)
}

// RawData returns the backing slice. Writes through it are visible in t.
func (t *Tensor) RawData() []float64 {
	return t.data
}

// At returns the element at the given index, one coordinate per dimension.
func (t *Tensor) At(idx ...int) float64 {
	return t.data[t.offset(idx)]
}

func (t *Tensor) offset(idx []int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index %v for rank %d tensor", idx, len(t.shape)))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", idx, t.shape))
		}
		off += v * t.strides[i]
	}
	return off
}

func makeStrides(shape []int) []int {
	if len(shape) == 0 {
		return nil
	}
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}
