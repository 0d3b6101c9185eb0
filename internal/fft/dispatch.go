package fft

// Kernel reports whether it handled the transform.
// It returns false when no implementation is available for the size.
type Kernel[T Complex] func(data, twiddle []T, bitrev []int) bool

// Kernels groups forward and inverse kernels for a given precision.
type Kernels[T Complex] struct {
	Forward Kernel[T]
	Inverse Kernel[T]
}

// SelectKernels returns the best available kernels for the detected
// features. Only the portable radix-2 kernels are registered so far;
// SIMD variants will hook in here once written.
func SelectKernels[T Complex](features Features) Kernels[T] {
	_ = features

	return Kernels[T]{
		Forward: forwardRadix2[T],
		Inverse: inverseRadix2[T],
	}
}
