// Package fft holds the portable 1D transform engine the ND plans
// batch over. Kernels are selected through a feature dispatch so
// architecture-specific implementations can slot in later; today the
// registered kernels are the pure Go radix-2 path with a direct DFT
// fallback for sizes that are not powers of two.
package fft

import (
	"math"

	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of unity)
// for a size-n FFT: W_n^k = exp(-2πik/n) for k = 0..n-1.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)
	for k := 0; k < n; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 FFT. Returns nil unless n is a power of two.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 || !IsPowerOf2(n) {
		return nil
	}

	bits := log2(n)

	bitrev := make([]int, n)
	for i := 0; i < n; i++ {
		bitrev[i] = reverseBits(i, bits)
	}

	return bitrev
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// reverseBits reverses the lower 'bits' bits of x.
// Example: reverseBits(6, 3) = reverseBits(0b110, 3) = 0b011 = 3.
func reverseBits(x, bits int) int {
	result := 0
	for b := 0; b < bits; b++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// complexFromFloat64 creates a complex number of type T from float64
// components. Conversions cover every type in the constraint's type
// set, defined complex types included.
func complexFromFloat64[T Complex](re, im float64) T {
	return T(complex(re, im))
}

// toComplex128 widens a value of type T to complex128.
func toComplex128[T Complex](val T) complex128 {
	return complex128(val)
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	c := complex128(val)
	return T(complex(real(c), -imag(c)))
}
