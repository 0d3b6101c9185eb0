package kokkosfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const testTolerance = 1e-9

// refStrides mirrors dense stride computation for the reference
// transform, independent of the library internals under test.
func refStrides(extents []int, l Layout) []int {
	rank := len(extents)
	strides := make([]int, rank)

	acc := 1
	if l == ColumnMajor {
		for i := 0; i < rank; i++ {
			strides[i] = acc
			acc *= extents[i]
		}
	} else {
		for i := rank - 1; i >= 0; i-- {
			strides[i] = acc
			acc *= extents[i]
		}
	}

	return strides
}

// refTransformND computes an ND DFT along the given axes with a direct
// O(n^2) per-axis pass. Axes may be negative. The inverse is scaled by
// 1/N over the transformed axes, matching the plan convention.
func refTransformND(src []complex128, extents []int, l Layout, fftAxes []int, inverse bool) []complex128 {
	rank := len(extents)
	strides := refStrides(extents, l)

	out := make([]complex128, len(src))
	copy(out, src)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	scale := 1.0

	for _, axis := range fftAxes {
		if axis < 0 {
			axis += rank
		}

		n := extents[axis]
		stride := strides[axis]
		scale *= float64(n)

		lane := make([]complex128, n)
		spectrum := make([]complex128, n)

		for offset := range out {
			if (offset/stride)%n != 0 {
				continue
			}

			for i := 0; i < n; i++ {
				lane[i] = out[offset+i*stride]
			}

			for k := 0; k < n; k++ {
				var sum complex128
				for j := 0; j < n; j++ {
					angle := sign * 2 * math.Pi * float64(j*k) / float64(n)
					sum += lane[j] * cmplx.Exp(complex(0, angle))
				}

				spectrum[k] = sum
			}

			for i := 0; i < n; i++ {
				out[offset+i*stride] = spectrum[i]
			}
		}
	}

	if inverse {
		for i := range out {
			out[i] /= complex(scale, 0)
		}
	}

	return out
}

func randomComplexData(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(rng.Float64()-0.5, rng.Float64()-0.5)
	}

	return data
}

func randomRealData(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() - 0.5
	}

	return data
}

func assertComplexSlicesClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("element %d = %v, want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}

func assertFloatSlicesClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("element %d = %v, want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}
