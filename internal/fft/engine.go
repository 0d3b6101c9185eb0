package fft

// Engine performs in-place 1D transforms of a fixed size. Twiddle and
// bit-reversal tables are computed once at construction; the kernels
// come from the feature dispatch, with the direct DFT as the fallback
// for sizes the registered kernels decline.
//
// An Engine owns scratch and is not safe for concurrent use. Plans that
// batch over an Engine serialize their calls.
type Engine[T Complex] struct {
	n       int
	twiddle []T
	bitrev  []int
	scratch []T
	kernels Kernels[T]
}

// NewEngine creates an engine for size-n transforms. n must be positive.
func NewEngine[T Complex](n int, features Features) *Engine[T] {
	return &Engine[T]{
		n:       n,
		twiddle: ComputeTwiddleFactors[T](n),
		bitrev:  ComputeBitReversalIndices(n),
		scratch: make([]T, n),
		kernels: SelectKernels[T](features),
	}
}

// Len returns the transform size.
func (e *Engine[T]) Len() int {
	return e.n
}

// Forward transforms data in place. len(data) must equal Len().
func (e *Engine[T]) Forward(data []T) {
	if !e.kernels.Forward(data, e.twiddle, e.bitrev) {
		copy(e.scratch, data)
		dftTransform(data, e.scratch, e.twiddle, false)
	}
}

// Inverse applies the unscaled inverse transform in place. Callers are
// responsible for 1/N normalization.
func (e *Engine[T]) Inverse(data []T) {
	if !e.kernels.Inverse(data, e.twiddle, e.bitrev) {
		copy(e.scratch, data)
		dftTransform(data, e.scratch, e.twiddle, true)
	}
}

// Transform runs Forward or Inverse based on the inverse flag.
func (e *Engine[T]) Transform(data []T, inverse bool) {
	if inverse {
		e.Inverse(data)
	} else {
		e.Forward(data)
	}
}
