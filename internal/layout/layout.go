// Package layout derives the per-axis sizes an FFT backend must be
// handed for a transform between two views that may differ in element
// kind (real vs complex) and share a storage layout.
//
// The derivation walks the axis map in storage order, takes the larger
// of the two views' extents along each axis as the transform size
// (either view may hold the half-spectrum representation), enforces the
// half-spectrum relationship on the innermost axis, normalizes
// column-major order by reversal, and keeps the trailing transformed
// axes plus a batch count for everything else.
package layout

import (
	"errors"
	"fmt"

	"github.com/OzCog/kokkos-fft/internal/axes"
	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

// Faults raised by extent derivation. All of them indicate misuse of
// the transform API by the caller; none is recoverable.
var (
	// ErrRealInputNeedsComplexOutput is returned when the input view is
	// real-valued but the output view is not complex-valued.
	ErrRealInputNeedsComplexOutput = errors.New("layout: real input requires complex output")

	// ErrRealOutputNeedsComplexInput is returned when the output view is
	// real-valued but the input view is not complex-valued.
	ErrRealOutputNeedsComplexInput = errors.New("layout: real output requires complex input")

	// ErrHalfSpectrumSize is returned when the complex side's innermost
	// extent is not floor(n/2)+1 for the real side's innermost extent n.
	ErrHalfSpectrumSize = errors.New("layout: innermost extents violate the half-spectrum rule")

	// ErrRankMismatch is returned when the two views have different ranks.
	ErrRankMismatch = errors.New("layout: input and output ranks differ")

	// ErrLayoutMismatch is returned when the two views use different
	// storage layouts.
	ErrLayoutMismatch = errors.New("layout: input and output layouts differ")
)

// Desc is the read-only slice of a view that extent derivation needs.
type Desc interface {
	Rank() int
	Extent(axis int) int
	Layout() fftypes.Layout
	Kind() fftypes.ElementKind
}

// Bundle carries the derived sizes for one transform invocation.
// In, Out, and FFT each have one entry per transformed axis, in the
// layout-normalized order the backend expects (innermost last).
// HowMany is the number of independent transforms batched over the
// untouched axes; HowMany * product(FFT) spans the larger of the two
// views. A Bundle is immutable once returned.
type Bundle struct {
	In      []int
	Out     []int
	FFT     []int
	HowMany int
}

// GetExtents derives the extents bundle for a transform of in into out
// over fftAxes. Both views must have the same rank and layout; fftAxes
// follows the rules of axes.MapAxes (negative indices allowed, no
// duplicates, 1 <= len <= rank).
func GetExtents(in, out Desc, fftAxes []int) (Bundle, error) {
	if in.Rank() != out.Rank() {
		return Bundle{}, fmt.Errorf("%w: %d vs %d", ErrRankMismatch, in.Rank(), out.Rank())
	}

	if in.Layout() != out.Layout() {
		return Bundle{}, fmt.Errorf("%w: %v vs %v", ErrLayoutMismatch, in.Layout(), out.Layout())
	}

	rank := in.Rank()

	m, _, err := axes.MapAxes(rank, in.Layout(), fftAxes)
	if err != nil {
		return Bundle{}, err
	}

	inExtents := make([]int, 0, rank)
	outExtents := make([]int, 0, rank)
	fftExtents := make([]int, 0, rank)

	// Walk the axes in their mapped storage order. The transform size
	// along an axis is the larger of the two extents: for R2C and C2R
	// one side holds the half-spectrum, for C2C both sides agree.
	for i := 0; i < rank; i++ {
		idx := m[i]
		inExtents = append(inExtents, in.Extent(idx))
		outExtents = append(outExtents, out.Extent(idx))
		fftExtents = append(fftExtents, max(in.Extent(idx), out.Extent(idx)))
	}

	innermost := in.Layout().InnermostPosition(rank)

	if in.Kind() == fftypes.KindReal {
		if out.Kind() != fftypes.KindComplex {
			return Bundle{}, ErrRealInputNeedsComplexOutput
		}

		if outExtents[innermost] != inExtents[innermost]/2+1 {
			return Bundle{}, fmt.Errorf("%w: output %d, input %d",
				ErrHalfSpectrumSize, outExtents[innermost], inExtents[innermost])
		}
	}

	if out.Kind() == fftypes.KindReal {
		if in.Kind() != fftypes.KindComplex {
			return Bundle{}, ErrRealOutputNeedsComplexInput
		}

		if inExtents[innermost] != outExtents[innermost]/2+1 {
			return Bundle{}, fmt.Errorf("%w: input %d, output %d",
				ErrHalfSpectrumSize, inExtents[innermost], outExtents[innermost])
		}
	}

	// Column-major storage lists the innermost axis first; reverse so the
	// trailing elements are the transformed axes in both layout families.
	if in.Layout() == fftypes.ColumnMajor {
		reverse(inExtents)
		reverse(outExtents)
		reverse(fftExtents)
	}

	dim := len(fftAxes)

	totalSize := product(fftExtents)
	bundle := Bundle{
		In:  inExtents[rank-dim:],
		Out: outExtents[rank-dim:],
		FFT: fftExtents[rank-dim:],
	}
	bundle.HowMany = totalSize / product(bundle.FFT)

	return bundle, nil
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func product(s []int) int {
	result := 1
	for _, v := range s {
		result *= v
	}

	return result
}
