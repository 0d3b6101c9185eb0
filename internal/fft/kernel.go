package fft

// forwardRadix2 computes an in-place forward DIT FFT. Returns false
// when the size is not a power of two or the tables are too short.
func forwardRadix2[T Complex](data, twiddle []T, bitrev []int) bool {
	return radix2(data, twiddle, bitrev, false)
}

// inverseRadix2 computes an in-place unscaled inverse DIT FFT.
func inverseRadix2[T Complex](data, twiddle []T, bitrev []int) bool {
	return radix2(data, twiddle, bitrev, true)
}

func radix2[T Complex](data, twiddle []T, bitrev []int, inverse bool) bool {
	n := len(data)
	if !IsPowerOf2(n) || len(twiddle) < n || len(bitrev) < n {
		return false
	}

	for i, j := range bitrev[:n] {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := twiddle[k*step]
				if inverse {
					w = conj(w)
				}

				a := data[start+k]
				b := data[start+k+half] * w
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}

	return true
}

// dftTransform computes dst = DFT(src) directly in O(n^2). It is the
// fallback for sizes without a fast kernel. Accumulates in complex128
// regardless of T to keep rounding error flat across sizes.
// dst and src must not alias.
func dftTransform[T Complex](dst, src, twiddle []T, inverse bool) {
	n := len(src)

	for k := 0; k < n; k++ {
		var sum complex128

		for j := 0; j < n; j++ {
			w := toComplex128(twiddle[(j*k)%n])
			if inverse {
				w = complex(real(w), -imag(w))
			}

			sum += toComplex128(src[j]) * w
		}

		dst[k] = complexFromFloat64[T](real(sum), imag(sum))
	}
}
