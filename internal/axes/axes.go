// Package axes computes the storage-order permutation that brings a
// view's transformed axes into the position an FFT backend expects.
//
// For a row-major view the FFT axes end up last in storage order, in
// the requested order; for a column-major view they end up first, in
// reversed order. Either way the remaining axes keep their relative
// order, so the permutation touches only what the transform needs.
package axes

import (
	"errors"
	"fmt"

	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

// Validation errors for a requested axis list.
var (
	// ErrAxisOutOfRange is returned when an axis index does not name an
	// axis of the view, even after negative-index normalization.
	ErrAxisOutOfRange = errors.New("axes: axis out of range")

	// ErrDuplicateAxis is returned when the same axis appears more than
	// once in the requested list.
	ErrDuplicateAxis = errors.New("axes: duplicate axis")

	// ErrInvalidRank is returned when the axis list is empty or longer
	// than the view's rank.
	ErrInvalidRank = errors.New("axes: axis list length must be in [1, rank]")
)

// Normalize resolves a possibly-negative axis index against rank.
// Negative indices count from the end, so -1 is the last logical axis.
func Normalize(axis, rank int) (int, error) {
	idx := axis
	if idx < 0 {
		idx += rank
	}

	if idx < 0 || idx >= rank {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrAxisOutOfRange, axis, rank)
	}

	return idx, nil
}

// NormalizeAll resolves every axis in the list and rejects duplicates.
func NormalizeAll(axes []int, rank int) ([]int, error) {
	if len(axes) < 1 || len(axes) > rank {
		return nil, fmt.Errorf("%w: got %d axes for rank %d", ErrInvalidRank, len(axes), rank)
	}

	normalized := make([]int, len(axes))
	seen := make(map[int]bool, len(axes))

	for i, axis := range axes {
		idx, err := Normalize(axis, rank)
		if err != nil {
			return nil, err
		}

		if seen[idx] {
			return nil, fmt.Errorf("%w: axis %d", ErrDuplicateAxis, axis)
		}

		seen[idx] = true
		normalized[i] = idx
	}

	return normalized, nil
}

// MapAxes returns the storage-position-to-logical-axis map for a
// transform over the given axes, plus its inverse. map[i] is the
// logical axis that position i reads from; inv[map[i]] == i.
//
// Row-major: untouched axes in ascending order, then the FFT axes in
// requested order (innermost last). Column-major: the FFT axes in
// reversed requested order (innermost first), then untouched axes in
// ascending order.
func MapAxes(rank int, layout fftypes.Layout, fftAxes []int) (m, inv []int, err error) {
	normalized, err := NormalizeAll(fftAxes, rank)
	if err != nil {
		return nil, nil, err
	}

	inFFT := make([]bool, rank)
	for _, idx := range normalized {
		inFFT[idx] = true
	}

	rest := make([]int, 0, rank-len(normalized))
	for idx := 0; idx < rank; idx++ {
		if !inFFT[idx] {
			rest = append(rest, idx)
		}
	}

	m = make([]int, 0, rank)

	if layout == fftypes.ColumnMajor {
		for i := len(normalized) - 1; i >= 0; i-- {
			m = append(m, normalized[i])
		}

		m = append(m, rest...)
	} else {
		m = append(m, rest...)
		m = append(m, normalized...)
	}

	return m, Invert(m), nil
}

// Invert returns the inverse of a permutation: out[perm[i]] = i.
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv
}

// IsIdentity reports whether the permutation maps every position to
// itself. Callers use this to skip a transpose entirely.
func IsIdentity(perm []int) bool {
	for i, p := range perm {
		if p != i {
			return false
		}
	}

	return true
}
