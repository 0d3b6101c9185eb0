package kokkosfft

import "github.com/OzCog/kokkos-fft/internal/fftypes"

// Complex is a type constraint for complex element types supported by
// the transforms. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point types used in real FFT
// operations. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Element is the union of all element types a View may hold.
type Element = fftypes.Element

// Layout identifies the storage order of a View.
type Layout = fftypes.Layout

// Storage layouts. RowMajor places the fastest-varying axis last in
// storage order, ColumnMajor places it first.
const (
	RowMajor    = fftypes.RowMajor
	ColumnMajor = fftypes.ColumnMajor
)

// ElementKind tags a View's element type as real- or complex-valued.
type ElementKind = fftypes.ElementKind

// Element kinds.
const (
	KindReal    = fftypes.KindReal
	KindComplex = fftypes.KindComplex
)
