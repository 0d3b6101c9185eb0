package fft

import "github.com/OzCog/kokkos-fft/internal/fftypes"

// Widen copies a real signal into a complex buffer with zero imaginary
// parts. len(dst) must be at least len(src).
func Widen[F fftypes.Float, T Complex](dst []T, src []F) {
	for i, v := range src {
		dst[i] = complexFromFloat64[T](float64(v), 0)
	}
}

// NarrowReal extracts the real parts of src into dst. The imaginary
// parts are discarded; for a well-formed inverse real transform they
// carry only rounding noise.
func NarrowReal[F fftypes.Float, T Complex](dst []F, src []T) {
	for i, v := range src {
		dst[i] = F(real(toComplex128(v)))
	}
}
