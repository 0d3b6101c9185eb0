package kokkosfft

import (
	"github.com/OzCog/kokkos-fft/internal/axes"
	"github.com/OzCog/kokkos-fft/internal/fft"
	"github.com/OzCog/kokkos-fft/internal/transpose"
)

// Plan is a complex-to-complex multidimensional transform between two
// views of identical shape. The extents bundle and the axis permutation
// are derived once at creation; Forward and Inverse only move data.
//
// A Plan owns scratch buffers and is not safe for concurrent use.
// Create one plan per goroutine, or serialize calls.
type Plan[T Complex] struct {
	in, out  View
	extents  Extents
	m, inv   []int
	permExt  []int
	total    int
	fftSize  int
	identity bool
	kernel   *ndKernel[T]
	work     []T
}

// NewPlan creates a complex-to-complex plan transforming in into out
// over the given axes. Both views must be complex-valued with identical
// extents, rank, and layout; negative axes count from the end.
func NewPlan[T Complex](in, out View, fftAxes ...int) (*Plan[T], error) {
	if in.Kind() != KindComplex || out.Kind() != KindComplex {
		return nil, ErrKindMismatch
	}

	bundle, err := GetExtents(in, out, fftAxes...)
	if err != nil {
		return nil, err
	}

	for i, rank := 0, in.Rank(); i < rank; i++ {
		if in.Extent(i) != out.Extent(i) {
			return nil, ErrExtentMismatch
		}
	}

	m, inv, err := axes.MapAxes(in.Rank(), in.Layout(), fftAxes)
	if err != nil {
		return nil, err
	}

	fftSize := 1
	for _, n := range bundle.FFT {
		fftSize *= n
	}

	return &Plan[T]{
		in:       in,
		out:      out,
		extents:  bundle,
		m:        m,
		inv:      inv,
		permExt:  transpose.PermutedExtents(in.Extents(), m),
		total:    in.Size(),
		fftSize:  fftSize,
		identity: axes.IsIdentity(m),
		kernel:   newNDKernel[T](bundle.FFT, in.Layout()),
		work:     make([]T, in.Size()),
	}, nil
}

// Extents returns the derived extents bundle of the plan.
func (p *Plan[T]) Extents() Extents {
	return p.extents
}

// Forward computes the forward transform of src into dst.
// dst and src may alias. Returns ErrNilSlice or ErrLengthMismatch on
// malformed buffers.
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.execute(dst, src, false)
}

// Inverse computes the inverse transform of src into dst, scaled by
// 1/N where N is the product of the transform extents.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.execute(dst, src, true)
}

func (p *Plan[T]) execute(dst, src []T, inverse bool) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != p.total || len(src) != p.total {
		return ErrLengthMismatch
	}

	// Bring the transformed axes into contiguous trailing (row-major)
	// or leading (column-major) storage positions, so every batch is a
	// dense block of fftSize elements.
	if p.identity {
		copy(p.work, src)
	} else {
		if err := transpose.Apply(p.work, src, p.in.Extents(), p.m, p.in.Layout()); err != nil {
			return err
		}
	}

	for b := 0; b < p.extents.HowMany; b++ {
		p.kernel.transform(p.work[b*p.fftSize:(b+1)*p.fftSize], inverse)
	}

	if inverse {
		fft.ScaleInPlace(p.work, 1/float64(p.fftSize))
	}

	if p.identity {
		copy(dst, p.work)
		return nil
	}

	return transpose.Apply(dst, p.work, p.permExt, p.inv, p.in.Layout())
}
