package kokkosfft

import (
	"github.com/OzCog/kokkos-fft/internal/axes"
	"github.com/OzCog/kokkos-fft/internal/fft"
	"github.com/OzCog/kokkos-fft/internal/transpose"
)

// RealPlan is a multidimensional transform between a real-valued view
// and its complex half-spectrum view. Forward runs real-to-complex,
// Inverse runs complex-to-real; the complex view's extent along the
// innermost transformed axis must be floor(n/2)+1 for a real extent n.
//
// F and T pair a real element type with its complex counterpart
// (float32 with complex64, float64 with complex128).
//
// Like Plan, a RealPlan owns scratch buffers and is not safe for
// concurrent use.
type RealPlan[F Float, T Complex] struct {
	realView, complexView View

	extents  Extents
	m, inv   []int
	identity bool

	permReal    []int
	permComplex []int

	totalReal    int
	totalComplex int
	fftSize      int

	// nInner and hInner are the full and half-spectrum extents of the
	// innermost transformed axis.
	nInner, hInner int

	// kernel covers the full-spectrum block; outerKernel covers the
	// half-spectrum block's full-length axes, leaving the truncated
	// innermost axis to per-lane reconstruction.
	kernel      *ndKernel[T]
	outerKernel *ndKernel[T]

	full     []T // complex copy of the real-side signal
	work     []T // permuted full-spectrum working buffer
	halfPerm []T // permuted half-spectrum buffer
}

// NewRealPlan creates a plan between realView (real-valued) and
// complexView (its half-spectrum) over the given axes. The axis listed
// last is the one the half-spectrum rule applies to.
func NewRealPlan[F Float, T Complex](realView, complexView View, fftAxes ...int) (*RealPlan[F, T], error) {
	if realView.Kind() != KindReal || complexView.Kind() != KindComplex {
		return nil, ErrKindMismatch
	}

	// Deriving with the real view as input exercises the same checks in
	// both directions; the bundle is symmetric in in/out roles.
	bundle, err := GetExtents(realView, complexView, fftAxes...)
	if err != nil {
		return nil, err
	}

	m, inv, err := axes.MapAxes(realView.Rank(), realView.Layout(), fftAxes)
	if err != nil {
		return nil, err
	}

	fftSize := 1
	for _, n := range bundle.FFT {
		fftSize *= n
	}

	dim := len(bundle.FFT)
	totalReal := realView.Size()
	totalComplex := complexView.Size()

	halfExtents := append([]int(nil), bundle.FFT...)
	halfExtents[dim-1] = bundle.Out[dim-1]

	return &RealPlan[F, T]{
		realView:     realView,
		complexView:  complexView,
		extents:      bundle,
		m:            m,
		inv:          inv,
		identity:     axes.IsIdentity(m),
		permReal:     transpose.PermutedExtents(realView.Extents(), m),
		permComplex:  transpose.PermutedExtents(complexView.Extents(), m),
		totalReal:    totalReal,
		totalComplex: totalComplex,
		fftSize:      fftSize,
		nInner:       bundle.FFT[dim-1],
		hInner:       bundle.Out[dim-1],
		kernel:       newNDKernel[T](bundle.FFT, realView.Layout()),
		outerKernel:  newNDKernel[T](halfExtents, realView.Layout()),
		full:         make([]T, totalReal),
		work:         make([]T, totalReal),
		halfPerm:     make([]T, totalComplex),
	}, nil
}

// Extents returns the derived extents bundle of the plan.
func (p *RealPlan[F, T]) Extents() Extents {
	return p.extents
}

// Forward computes the real-to-complex transform of src into dst.
// len(src) must span the real view, len(dst) the complex view.
func (p *RealPlan[F, T]) Forward(dst []T, src []F) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != p.totalReal || len(dst) != p.totalComplex {
		return ErrLengthMismatch
	}

	fft.Widen(p.full, src)

	if p.identity {
		copy(p.work, p.full)
	} else {
		if err := transpose.Apply(p.work, p.full, p.realView.Extents(), p.m, p.realView.Layout()); err != nil {
			return err
		}
	}

	for b := 0; b < p.extents.HowMany; b++ {
		p.kernel.transform(p.work[b*p.fftSize:(b+1)*p.fftSize], false)
	}

	// In the permuted buffer the innermost transformed axis is the
	// stride-1 axis, so the spectrum is a sequence of contiguous lanes
	// that truncate independently to their half-spectrum form.
	lanes := p.totalReal / p.nInner
	for l := 0; l < lanes; l++ {
		fft.PackHalfSpectrum(p.halfPerm[l*p.hInner:(l+1)*p.hInner], p.work[l*p.nInner:(l+1)*p.nInner])
	}

	if p.identity {
		copy(dst, p.halfPerm)
		return nil
	}

	return transpose.Apply(dst, p.halfPerm, p.permComplex, p.inv, p.realView.Layout())
}

// Inverse computes the complex-to-real transform of src into dst,
// scaled by 1/N where N is the product of the transform extents.
// The redundant half of the spectrum is reconstructed from conjugate
// symmetry, so src only carries the floor(n/2)+1 innermost bins.
func (p *RealPlan[F, T]) Inverse(dst []F, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != p.totalComplex || len(dst) != p.totalReal {
		return ErrLengthMismatch
	}

	if p.identity {
		copy(p.halfPerm, src)
	} else {
		if err := transpose.Apply(p.halfPerm, src, p.complexView.Extents(), p.m, p.complexView.Layout()); err != nil {
			return err
		}
	}

	// Invert the full-length axes first, on the half-spectrum data.
	// Conjugate symmetry of a real signal's spectrum couples all axes
	// at once, so the truncated axis can only be expanded per lane
	// after the other axes are back in signal space.
	halfBlock := p.outerKernel.size
	for b := 0; b < p.extents.HowMany; b++ {
		p.outerKernel.transformOuter(p.halfPerm[b*halfBlock:(b+1)*halfBlock], true)
	}

	lanes := p.totalReal / p.nInner
	inner := p.kernel.engines[p.nInner]

	for l := 0; l < lanes; l++ {
		lane := p.work[l*p.nInner : (l+1)*p.nInner]
		fft.UnpackHalfSpectrum(lane, p.halfPerm[l*p.hInner:(l+1)*p.hInner])
		inner.Inverse(lane)
	}

	fft.ScaleInPlace(p.work, 1/float64(p.fftSize))

	if p.identity {
		fft.NarrowReal(dst, p.work)
		return nil
	}

	if err := transpose.Apply(p.full, p.work, p.permReal, p.inv, p.realView.Layout()); err != nil {
		return err
	}

	fft.NarrowReal(dst, p.full)

	return nil
}
