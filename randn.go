package randn

import (
	"context"
	"sync"

	"github.com/fumitoshi0524/randn/tensor"
)

// Batch is an ordered set of independently drawn matrices.
type Batch []*tensor.Tensor

// Stack copies the batch into one [sims, rows, cols] tensor. An empty batch
// has no matrix shape to stack and yields ErrInvalidShape.
func (b Batch) Stack() (*tensor.Tensor, error) {
	return tensor.Stack(b...)
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the engine behind the package-level functions: shared pool,
// default grain, seeded from crypto/rand on every call.
func Default() *Engine {
	return defaultEngine()
}

// Vector returns size standard-normal draws.
func Vector(size int) (*tensor.Tensor, error) {
	return Default().Vector(context.Background(), size)
}

// Matrix returns a rows x cols standard-normal matrix filled row-major.
func Matrix(rows, cols int) (*tensor.Tensor, error) {
	return Default().Matrix(context.Background(), rows, cols)
}

// MatrixBatch returns sims independent rows x cols standard-normal matrices.
func MatrixBatch(rows, cols, sims int) (Batch, error) {
	return Default().MatrixBatch(context.Background(), rows, cols, sims)
}

// Tensor returns a standard-normal tensor of the given shape.
func Tensor(shape ...int) (*tensor.Tensor, error) {
	return Default().Tensor(context.Background(), shape...)
}
