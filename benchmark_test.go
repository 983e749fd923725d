package randn

import "testing"

func BenchmarkVector(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Vector(50_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatrix(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Matrix(50, 1000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatrixBatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := MatrixBatch(50, 17, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
