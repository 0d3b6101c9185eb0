package fft

// ScaleInPlace multiplies each element of data by scale.
func ScaleInPlace[T Complex](data []T, scale float64) {
	if scale == 1 {
		return
	}

	factor := complexFromFloat64[T](scale, 0)
	for i := range data {
		data[i] *= factor
	}
}
