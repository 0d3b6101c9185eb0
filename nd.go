package kokkosfft

import (
	"github.com/OzCog/kokkos-fft/internal/fft"
	"github.com/OzCog/kokkos-fft/internal/fftypes"
	"github.com/OzCog/kokkos-fft/internal/transpose"
)

// ndKernel runs an in-place multidimensional transform over one dense
// batch block. The block holds the transformed axes only; the plan
// layer slices the working buffer into HowMany such blocks.
type ndKernel[T Complex] struct {
	shape     []int // block extents in storage order
	strides   []int
	size      int
	innermost int // storage index of the fastest-varying block axis
	engines   map[int]*fft.Engine[T]
	lane      []T
}

// newNDKernel builds the kernel for the given transform extents
// (layout-normalized order, innermost last) in the given layout.
func newNDKernel[T Complex](fftExtents []int, l Layout) *ndKernel[T] {
	shape := append([]int(nil), fftExtents...)
	innermost := len(shape) - 1

	if l == fftypes.ColumnMajor {
		// Column-major blocks store the innermost axis first.
		for i, j := 0, len(shape)-1; i < j; i, j = i+1, j-1 {
			shape[i], shape[j] = shape[j], shape[i]
		}

		innermost = 0
	}

	size := 1
	maxExtent := 0

	features := fft.DetectFeatures()
	engines := make(map[int]*fft.Engine[T], len(shape))

	for _, n := range shape {
		size *= n
		maxExtent = max(maxExtent, n)

		if _, ok := engines[n]; !ok {
			engines[n] = fft.NewEngine[T](n, features)
		}
	}

	return &ndKernel[T]{
		shape:     shape,
		strides:   transpose.Strides(shape, l),
		size:      size,
		innermost: innermost,
		engines:   engines,
		lane:      make([]T, maxExtent),
	}
}

// transform applies a 1D pass along every block axis in turn.
func (k *ndKernel[T]) transform(block []T, inverse bool) {
	k.transformAxes(block, inverse, false)
}

// transformOuter applies 1D passes along every block axis except the
// innermost one. Real transforms use it to run the full-length axes of
// a half-spectrum block, whose truncated axis needs separate handling.
func (k *ndKernel[T]) transformOuter(block []T, inverse bool) {
	k.transformAxes(block, inverse, true)
}

// transformAxes walks the block axes; lanes that are not contiguous are
// gathered through the lane scratch, the same way strided 1D
// transforms work.
func (k *ndKernel[T]) transformAxes(block []T, inverse, skipInnermost bool) {
	for axis, n := range k.shape {
		if skipInnermost && axis == k.innermost {
			continue
		}

		stride := k.strides[axis]
		slab := n * stride
		engine := k.engines[n]

		for base := 0; base < k.size; base += slab {
			for t := 0; t < stride; t++ {
				if stride == 1 {
					engine.Transform(block[base:base+n], inverse)
					continue
				}

				lane := k.lane[:n]
				for i := 0; i < n; i++ {
					lane[i] = block[base+t+i*stride]
				}

				engine.Transform(lane, inverse)

				for i := 0; i < n; i++ {
					block[base+t+i*stride] = lane[i]
				}
			}
		}
	}
}
