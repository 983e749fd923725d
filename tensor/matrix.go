package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrRank reports an operation applied to a tensor of the wrong rank.
var ErrRank = errors.New("unexpected tensor rank")

// FromVector adopts buf as a vector of length len(buf).
func FromVector(buf []float64) *Tensor {
	t, err := Adopt(buf, len(buf))
	if err != nil {
		panic(err)
	}
	return t
}

// FromMatrix adopts buf as a rows x cols matrix filled row-major, so that
// element (i, j) is buf[i*cols+j]. A zero dimension gives an empty matrix that
// still reports its shape.
func FromMatrix(rows, cols int, buf []float64) (*Tensor, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(buf) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d matrix", ErrShapeMismatch, len(buf), rows, cols)
	}
	return Adopt(buf, rows, cols)
}

// Dims returns the row and column counts of a rank-2 tensor.
func (t *Tensor) Dims() (rows, cols int) {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("tensor: Dims on rank %d tensor", len(t.shape)))
	}
	return t.shape[0], t.shape[1]
}

// Row returns a view of row i of a rank-2 tensor.
func (t *Tensor) Row(i int) []float64 {
	rows, cols := t.Dims()
	if i < 0 || i >= rows {
		panic(fmt.Sprintf("tensor: row %d out of range [0, %d)", i, rows))
	}
	return t.data[i*cols : (i+1)*cols : (i+1)*cols]
}

// Dense returns a gonum matrix sharing t's storage. Empty matrices come back
// as an empty mat.Dense since gonum cannot hold a zero-length dimension.
func (t *Tensor) Dense() (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: Dense needs rank 2, got %d", ErrRank, len(t.shape))
	}
	if len(t.data) == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.data), nil
}

// VecDense returns a gonum vector sharing t's storage.
func (t *Tensor) VecDense() (*mat.VecDense, error) {
	if len(t.shape) != 1 {
		return nil, fmt.Errorf("%w: VecDense needs rank 1, got %d", ErrRank, len(t.shape))
	}
	if len(t.data) == 0 {
		return &mat.VecDense{}, nil
	}
	return mat.NewVecDense(len(t.data), t.data), nil
}
