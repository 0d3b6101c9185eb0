// Package transpose permutes the axes of a flat multidimensional
// buffer according to an axis map, in either storage layout. The
// execution layer uses it to gather transformed axes into contiguous
// positions before handing batches to the 1D engine, and to scatter
// results back through the inverse map.
package transpose

import (
	"errors"
	"fmt"

	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

// ErrSizeMismatch is returned when a buffer does not span the product
// of its extents.
var ErrSizeMismatch = errors.New("transpose: buffer length does not match extents")

// PermutedExtents returns the extents of the destination of a permute:
// destination axis i takes the extent of source axis perm[i].
func PermutedExtents(extents, perm []int) []int {
	out := make([]int, len(perm))
	for i, p := range perm {
		out[i] = extents[p]
	}

	return out
}

// Strides returns the per-axis element strides for a dense buffer with
// the given extents in the given layout.
func Strides(extents []int, l fftypes.Layout) []int {
	rank := len(extents)
	strides := make([]int, rank)

	if l == fftypes.ColumnMajor {
		acc := 1
		for i := 0; i < rank; i++ {
			strides[i] = acc
			acc *= extents[i]
		}

		return strides
	}

	acc := 1
	for i := rank - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= extents[i]
	}

	return strides
}

// Apply copies src into dst with its axes permuted: destination axis i
// enumerates source axis perm[i]. Both buffers are dense in layout l;
// dst's extents are PermutedExtents(srcExtents, perm). src and dst must
// not alias.
func Apply[T any](dst, src []T, srcExtents, perm []int, l fftypes.Layout) error {
	total := 1
	for _, e := range srcExtents {
		total *= e
	}

	if len(src) != total || len(dst) != total {
		return fmt.Errorf("%w: src %d, dst %d, want %d", ErrSizeMismatch, len(src), len(dst), total)
	}

	rank := len(srcExtents)
	if rank == 0 {
		if total == 1 {
			dst[0] = src[0]
		}

		return nil
	}

	srcStrides := Strides(srcExtents, l)
	dstStrides := Strides(PermutedExtents(srcExtents, perm), l)

	// For every source element, the destination coordinate along axis i
	// is the source coordinate along axis perm[i]. Folding the strides
	// gives a per-source-axis destination stride, so one odometer walk
	// over the source covers everything.
	dstAxisStride := make([]int, rank)
	for i, p := range perm {
		dstAxisStride[p] = dstStrides[i]
	}

	index := make([]int, rank)
	srcOffset, dstOffset := 0, 0

	for {
		dst[dstOffset] = src[srcOffset]

		axis := rank - 1
		for axis >= 0 {
			index[axis]++
			srcOffset += srcStrides[axis]
			dstOffset += dstAxisStride[axis]

			if index[axis] < srcExtents[axis] {
				break
			}

			index[axis] = 0
			srcOffset -= srcStrides[axis] * srcExtents[axis]
			dstOffset -= dstAxisStride[axis] * srcExtents[axis]
			axis--
		}

		if axis < 0 {
			return nil
		}
	}
}
