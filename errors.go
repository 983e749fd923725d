package randn

import (
	"errors"

	"github.com/fumitoshi0524/randn/rng"
	"github.com/fumitoshi0524/randn/tensor"
)

var (
	// ErrAllocation reports a request whose storage overflows the address
	// space or the configured memory limit. Nothing is allocated.
	ErrAllocation = errors.New("allocation exceeds limit")

	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrEntropySource = rng.ErrEntropySource
)
