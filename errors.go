package kokkosfft

import (
	"errors"

	"github.com/OzCog/kokkos-fft/internal/axes"
	"github.com/OzCog/kokkos-fft/internal/layout"
)

// Sentinel errors returned by view construction and transform plans.
var (
	// ErrInvalidExtent is returned when a view is constructed with a
	// non-positive extent.
	ErrInvalidExtent = errors.New("kokkosfft: extents must be positive")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("kokkosfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't
	// match the plan's view extents.
	ErrLengthMismatch = errors.New("kokkosfft: slice length mismatch")

	// ErrExtentMismatch is returned when a complex-to-complex plan is
	// given views whose extents differ.
	ErrExtentMismatch = errors.New("kokkosfft: input and output extents differ")

	// ErrKindMismatch is returned when a plan constructor is given views
	// whose element kinds don't fit the plan type.
	ErrKindMismatch = errors.New("kokkosfft: view element kind does not match plan type")
)

// Faults from extent derivation, re-exported so callers can test for
// them without importing internal packages.
var (
	// ErrRealInputNeedsComplexOutput reports a real-valued input view
	// paired with a non-complex output view.
	ErrRealInputNeedsComplexOutput = layout.ErrRealInputNeedsComplexOutput

	// ErrRealOutputNeedsComplexInput reports a real-valued output view
	// paired with a non-complex input view.
	ErrRealOutputNeedsComplexInput = layout.ErrRealOutputNeedsComplexInput

	// ErrHalfSpectrumSize reports innermost extents that violate the
	// floor(n/2)+1 half-spectrum relationship.
	ErrHalfSpectrumSize = layout.ErrHalfSpectrumSize

	// ErrRankMismatch reports views of different ranks.
	ErrRankMismatch = layout.ErrRankMismatch

	// ErrLayoutMismatch reports views with different storage layouts.
	ErrLayoutMismatch = layout.ErrLayoutMismatch

	// ErrAxisOutOfRange reports an FFT axis that names no axis of the views.
	ErrAxisOutOfRange = axes.ErrAxisOutOfRange

	// ErrDuplicateAxis reports an FFT axis listed more than once.
	ErrDuplicateAxis = axes.ErrDuplicateAxis

	// ErrInvalidRank reports an FFT axis list that is empty or longer
	// than the views' rank.
	ErrInvalidRank = axes.ErrInvalidRank
)
