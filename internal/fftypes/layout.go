package fftypes

// Layout identifies the storage order of a multidimensional view.
// Row-major places the fastest-varying axis last in storage order,
// column-major places it first. These are the only two layout families
// the transforms support.
type Layout uint8

const (
	RowMajor Layout = iota
	ColumnMajor
)

// String returns a human-readable name for the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// InnermostPosition returns the storage-order position of the
// fastest-varying axis for a view of the given rank. All innermost-axis
// logic (the half-spectrum checks in particular) goes through this one
// function rather than branching on the layout inline.
func (l Layout) InnermostPosition(rank int) int {
	if l == ColumnMajor {
		return 0
	}

	return rank - 1
}
