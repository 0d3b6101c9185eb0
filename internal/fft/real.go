package fft

// HalfSpectrumLen returns the number of meaningful bins in the spectrum
// of a length-n real signal: floor(n/2)+1.
func HalfSpectrumLen(n int) int {
	return n/2 + 1
}

// PackHalfSpectrum copies the non-redundant bins of a full n-point
// spectrum of a real signal into dst. len(dst) must be
// HalfSpectrumLen(len(full)).
func PackHalfSpectrum[T Complex](dst, full []T) {
	copy(dst, full[:len(dst)])
}

// UnpackHalfSpectrum reconstructs the full n-point conjugate-symmetric
// spectrum from its half-spectrum form: full[k] = half[k] for
// k < len(half), full[n-k] = conj(half[k]) for the mirrored bins.
// len(half) must be HalfSpectrumLen(len(full)).
func UnpackHalfSpectrum[T Complex](full, half []T) {
	n := len(full)
	copy(full[:len(half)], half)

	for k := 1; k <= (n-1)/2; k++ {
		full[n-k] = conj(full[k])
	}
}
