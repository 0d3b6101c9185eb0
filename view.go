package kokkosfft

import (
	"fmt"

	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

// View describes a dense multidimensional array: its per-axis extents
// in storage order, its storage layout, and its element kind. A View
// carries no data; transform methods take the flat buffer separately
// and validate it against the View's extents.
//
// Views are immutable values and safe to share between goroutines.
type View struct {
	extents []int
	layout  fftypes.Layout
	kind    fftypes.ElementKind
}

// NewView creates a View for element type T with the given extents in
// storage order. T fixes the element kind: float32/float64 views are
// real-valued, complex64/complex128 views are complex-valued.
// Every extent must be positive.
func NewView[T Element](l Layout, extents ...int) (View, error) {
	for i, e := range extents {
		if e <= 0 {
			return View{}, fmt.Errorf("%w: extent(%d) = %d", ErrInvalidExtent, i, e)
		}
	}

	return View{
		extents: append([]int(nil), extents...),
		layout:  l,
		kind:    fftypes.KindOf[T](),
	}, nil
}

// MustView is NewView that panics on invalid extents. Intended for
// construction with constant shapes.
func MustView[T Element](l Layout, extents ...int) View {
	v, err := NewView[T](l, extents...)
	if err != nil {
		panic(err)
	}

	return v
}

// Rank returns the number of axes.
func (v View) Rank() int {
	return len(v.extents)
}

// Extent returns the size along the given storage-order axis.
func (v View) Extent(axis int) int {
	return v.extents[axis]
}

// Extents returns a copy of the per-axis extents in storage order.
func (v View) Extents() []int {
	return append([]int(nil), v.extents...)
}

// Size returns the total number of elements the View spans.
func (v View) Size() int {
	size := 1
	for _, e := range v.extents {
		size *= e
	}

	return size
}

// Layout returns the storage layout.
func (v View) Layout() Layout {
	return v.layout
}

// Kind returns the element kind.
func (v View) Kind() ElementKind {
	return v.kind
}

// String formats the view for diagnostics, e.g. "complex[4 8 16] row-major".
func (v View) String() string {
	return fmt.Sprintf("%v%v %v", v.kind, v.extents, v.layout)
}
