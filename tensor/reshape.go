package tensor

import "fmt"

// Reshape returns a tensor sharing t's storage under a new shape. One
// dimension may be -1 and is inferred from the element count. Row-major
// order is preserved, so reshaping never moves an element.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: reshape shape required", ErrInvalidShape)
	}
	shape = append([]int(nil), shape...)
	total := t.Numel()
	prod := 1
	infer := -1
	for i, dim := range shape {
		if dim == -1 {
			if infer != -1 {
				return nil, fmt.Errorf("%w: multiple inferred dimensions", ErrInvalidShape)
			}
			infer = i
			continue
		}
		if dim < 0 {
			return nil, fmt.Errorf("%w: invalid reshape dimension %d", ErrInvalidShape, dim)
		}
		prod *= dim
	}
	if infer != -1 {
		if prod == 0 || total%prod != 0 {
			return nil, fmt.Errorf("%w: cannot infer dimension of %v for %d values", ErrShapeMismatch, shape, total)
		}
		shape[infer] = total / prod
		prod = total
	}
	if prod != total {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShapeMismatch, t.shape, shape)
	}
	return &Tensor{
		data:    t.data,
		shape:   shape,
		strides: makeStrides(shape),
	}, nil
}

// Flatten returns a rank-1 view of t in row-major order.
func Flatten(t *Tensor) *Tensor {
	out, err := t.Reshape(t.Numel())
	if err != nil {
		panic(err)
	}
	return out
}
