package kokkosfft

import "github.com/OzCog/kokkos-fft/internal/layout"

// Extents is the derived size bundle for one transform invocation.
// In, Out, and FFT list the transformed axes' extents of the input
// view, the output view, and the transform itself, in the
// layout-normalized order the backend expects (innermost axis last).
// HowMany is the number of independent transforms batched over the
// remaining axes.
//
// The transform extent along an axis is the larger of the two views'
// extents there, so for mixed real/complex transforms FFT carries the
// full (real-side) sizes while the complex side's half-spectrum extent
// appears in In or Out.
type Extents struct {
	In      []int
	Out     []int
	FFT     []int
	HowMany int
}

// GetExtents derives the extents bundle for a transform of in into out
// over the given axes. Negative axes count from the end. Both views
// must share rank and layout; mixed real/complex views must satisfy the
// half-spectrum relationship on the innermost transformed axis.
//
// The derivation is pure: identical arguments always produce an
// identical bundle, and concurrent calls need no synchronization.
func GetExtents(in, out View, fftAxes ...int) (Extents, error) {
	bundle, err := layout.GetExtents(in, out, fftAxes)
	if err != nil {
		return Extents{}, err
	}

	return Extents{
		In:      bundle.In,
		Out:     bundle.Out,
		FFT:     bundle.FFT,
		HowMany: bundle.HowMany,
	}, nil
}
