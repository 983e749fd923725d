package tensor

import (
	"errors"
	"testing"
)

func TestFromMatrixFillsRowMajor(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5}
	m, err := FromMatrix(2, 3, buf)
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}
	rows, cols := m.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("unexpected dims %dx%d", rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.At(i, j) != buf[i*cols+j] {
				t.Fatalf("At(%d,%d) = %v, want %v", i, j, m.At(i, j), buf[i*cols+j])
			}
		}
	}
	if !almostEqualSlices(m.Row(1), []float64{3, 4, 5}, 0) {
		t.Fatalf("unexpected row 1: %v", m.Row(1))
	}
}

func TestFromMatrixRejectsMismatch(t *testing.T) {
	if _, err := FromMatrix(2, 3, make([]float64, 5)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := FromMatrix(-1, 3, nil); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
}

func TestFromMatrixEmpty(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {3, 0}, {0, 0}} {
		m, err := FromMatrix(dims[0], dims[1], nil)
		if err != nil {
			t.Fatalf("FromMatrix(%d, %d) failed: %v", dims[0], dims[1], err)
		}
		if !equalShapes(m.Shape(), dims[:]) || m.Numel() != 0 {
			t.Fatalf("unexpected empty matrix %v with %d values", m.Shape(), m.Numel())
		}
		d, err := m.Dense()
		if err != nil {
			t.Fatalf("Dense failed: %v", err)
		}
		if !d.IsEmpty() {
			t.Fatalf("expected an empty gonum matrix")
		}
	}
}

func TestFromVectorAdopts(t *testing.T) {
	buf := []float64{1, 2, 3}
	v := FromVector(buf)
	if !equalShapes(v.Shape(), []int{3}) {
		t.Fatalf("unexpected shape %v", v.Shape())
	}
	buf[2] = 7
	if v.At(2) != 7 {
		t.Fatalf("FromVector copied its input")
	}
	if FromVector(nil).Numel() != 0 {
		t.Fatalf("expected an empty vector")
	}
}

func TestDenseSharesStorage(t *testing.T) {
	m, err := FromMatrix(2, 3, []float64{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromMatrix failed: %v", err)
	}
	d, err := m.Dense()
	if err != nil {
		t.Fatalf("Dense failed: %v", err)
	}
	if d.At(1, 2) != m.At(1, 2) {
		t.Fatalf("gonum view disagrees on (1,2): %v vs %v", d.At(1, 2), m.At(1, 2))
	}
	d.Set(0, 0, 42)
	if m.At(0, 0) != 42 {
		t.Fatalf("Dense should share storage with the tensor")
	}
	if _, err := m.VecDense(); !errors.Is(err, ErrRank) {
		t.Fatalf("expected ErrRank, got %v", err)
	}
}

func TestVecDenseSharesStorage(t *testing.T) {
	v := FromVector([]float64{1, 2, 3})
	vd, err := v.VecDense()
	if err != nil {
		t.Fatalf("VecDense failed: %v", err)
	}
	if vd.Len() != 3 || vd.AtVec(1) != 2 {
		t.Fatalf("unexpected gonum vector")
	}
	vd.SetVec(1, 8)
	if v.At(1) != 8 {
		t.Fatalf("VecDense should share storage with the tensor")
	}
	if _, err := v.Dense(); !errors.Is(err, ErrRank) {
		t.Fatalf("expected ErrRank, got %v", err)
	}
}
