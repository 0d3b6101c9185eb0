package axes

import (
	"errors"
	"slices"
	"testing"

	"github.com/OzCog/kokkos-fft/internal/fftypes"
)

func TestMapAxes1D(t *testing.T) {
	t.Parallel()

	for _, l := range []fftypes.Layout{fftypes.RowMajor, fftypes.ColumnMajor} {
		for _, axis := range []int{0, -1} {
			m, inv, err := MapAxes(1, l, []int{axis})
			if err != nil {
				t.Fatalf("MapAxes(1, %v, [%d]) error: %v", l, axis, err)
			}

			if !slices.Equal(m, []int{0}) || !slices.Equal(inv, []int{0}) {
				t.Fatalf("MapAxes(1, %v, [%d]) = %v, %v, want [0], [0]", l, axis, m, inv)
			}
		}
	}
}

func TestMapAxes2D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  fftypes.Layout
		axes    []int
		wantMap []int
		wantInv []int
	}{
		{"row/0", fftypes.RowMajor, []int{0}, []int{1, 0}, []int{1, 0}},
		{"row/1", fftypes.RowMajor, []int{1}, []int{0, 1}, []int{0, 1}},
		{"row/-1", fftypes.RowMajor, []int{-1}, []int{0, 1}, []int{0, 1}},
		{"row/0,-1", fftypes.RowMajor, []int{0, -1}, []int{0, 1}, []int{0, 1}},
		{"row/-1,0", fftypes.RowMajor, []int{-1, 0}, []int{1, 0}, []int{1, 0}},
		{"row/0,1", fftypes.RowMajor, []int{0, 1}, []int{0, 1}, []int{0, 1}},
		{"row/1,0", fftypes.RowMajor, []int{1, 0}, []int{1, 0}, []int{1, 0}},
		{"col/0", fftypes.ColumnMajor, []int{0}, []int{0, 1}, []int{0, 1}},
		{"col/1", fftypes.ColumnMajor, []int{1}, []int{1, 0}, []int{1, 0}},
		{"col/-1", fftypes.ColumnMajor, []int{-1}, []int{1, 0}, []int{1, 0}},
		{"col/0,-1", fftypes.ColumnMajor, []int{0, -1}, []int{1, 0}, []int{1, 0}},
		{"col/-1,0", fftypes.ColumnMajor, []int{-1, 0}, []int{0, 1}, []int{0, 1}},
		{"col/0,1", fftypes.ColumnMajor, []int{0, 1}, []int{1, 0}, []int{1, 0}},
		{"col/1,0", fftypes.ColumnMajor, []int{1, 0}, []int{0, 1}, []int{0, 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, inv, err := MapAxes(2, tt.layout, tt.axes)
			if err != nil {
				t.Fatalf("MapAxes error: %v", err)
			}

			if !slices.Equal(m, tt.wantMap) {
				t.Errorf("map = %v, want %v", m, tt.wantMap)
			}

			if !slices.Equal(inv, tt.wantInv) {
				t.Errorf("inv = %v, want %v", inv, tt.wantInv)
			}
		})
	}
}

func TestMapAxes3D(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		layout  fftypes.Layout
		axes    []int
		wantMap []int
		wantInv []int
	}{
		{"row/0", fftypes.RowMajor, []int{0}, []int{1, 2, 0}, []int{2, 0, 1}},
		{"row/1", fftypes.RowMajor, []int{1}, []int{0, 2, 1}, []int{0, 2, 1}},
		{"row/2", fftypes.RowMajor, []int{2}, []int{0, 1, 2}, []int{0, 1, 2}},
		{"row/0,1", fftypes.RowMajor, []int{0, 1}, []int{2, 0, 1}, []int{1, 2, 0}},
		{"row/0,2", fftypes.RowMajor, []int{0, 2}, []int{1, 0, 2}, []int{1, 0, 2}},
		{"row/1,0", fftypes.RowMajor, []int{1, 0}, []int{2, 1, 0}, []int{2, 1, 0}},
		{"row/1,2", fftypes.RowMajor, []int{1, 2}, []int{0, 1, 2}, []int{0, 1, 2}},
		{"row/2,0", fftypes.RowMajor, []int{2, 0}, []int{1, 2, 0}, []int{2, 0, 1}},
		{"row/2,1", fftypes.RowMajor, []int{2, 1}, []int{0, 2, 1}, []int{0, 2, 1}},
		{"row/0,1,2", fftypes.RowMajor, []int{0, 1, 2}, []int{0, 1, 2}, []int{0, 1, 2}},
		{"row/0,2,1", fftypes.RowMajor, []int{0, 2, 1}, []int{0, 2, 1}, []int{0, 2, 1}},
		{"row/1,0,2", fftypes.RowMajor, []int{1, 0, 2}, []int{1, 0, 2}, []int{1, 0, 2}},
		{"row/1,2,0", fftypes.RowMajor, []int{1, 2, 0}, []int{1, 2, 0}, []int{2, 0, 1}},
		{"row/2,0,1", fftypes.RowMajor, []int{2, 0, 1}, []int{2, 0, 1}, []int{1, 2, 0}},
		{"row/2,1,0", fftypes.RowMajor, []int{2, 1, 0}, []int{2, 1, 0}, []int{2, 1, 0}},
		{"col/0", fftypes.ColumnMajor, []int{0}, []int{0, 1, 2}, []int{0, 1, 2}},
		{"col/1", fftypes.ColumnMajor, []int{1}, []int{1, 0, 2}, []int{1, 0, 2}},
		{"col/2", fftypes.ColumnMajor, []int{2}, []int{2, 0, 1}, []int{1, 2, 0}},
		{"col/0,1", fftypes.ColumnMajor, []int{0, 1}, []int{1, 0, 2}, []int{1, 0, 2}},
		{"col/0,2", fftypes.ColumnMajor, []int{0, 2}, []int{2, 0, 1}, []int{1, 2, 0}},
		{"col/1,0", fftypes.ColumnMajor, []int{1, 0}, []int{0, 1, 2}, []int{0, 1, 2}},
		{"col/1,2", fftypes.ColumnMajor, []int{1, 2}, []int{2, 1, 0}, []int{2, 1, 0}},
		{"col/2,0", fftypes.ColumnMajor, []int{2, 0}, []int{0, 2, 1}, []int{0, 2, 1}},
		{"col/2,1", fftypes.ColumnMajor, []int{2, 1}, []int{1, 2, 0}, []int{2, 0, 1}},
		{"col/0,1,2", fftypes.ColumnMajor, []int{0, 1, 2}, []int{2, 1, 0}, []int{2, 1, 0}},
		{"col/0,2,1", fftypes.ColumnMajor, []int{0, 2, 1}, []int{1, 2, 0}, []int{2, 0, 1}},
		{"col/1,0,2", fftypes.ColumnMajor, []int{1, 0, 2}, []int{2, 0, 1}, []int{1, 2, 0}},
		{"col/1,2,0", fftypes.ColumnMajor, []int{1, 2, 0}, []int{0, 2, 1}, []int{0, 2, 1}},
		{"col/2,0,1", fftypes.ColumnMajor, []int{2, 0, 1}, []int{1, 0, 2}, []int{1, 0, 2}},
		{"col/2,1,0", fftypes.ColumnMajor, []int{2, 1, 0}, []int{0, 1, 2}, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, inv, err := MapAxes(3, tt.layout, tt.axes)
			if err != nil {
				t.Fatalf("MapAxes error: %v", err)
			}

			if !slices.Equal(m, tt.wantMap) {
				t.Errorf("map = %v, want %v", m, tt.wantMap)
			}

			if !slices.Equal(inv, tt.wantInv) {
				t.Errorf("inv = %v, want %v", inv, tt.wantInv)
			}
		})
	}
}

func TestMapAxesInverseProperty(t *testing.T) {
	t.Parallel()

	axesLists := [][]int{{0}, {3}, {-1}, {1, 3}, {3, 1}, {0, 2, 3}, {3, 2, 1, 0}}

	for _, l := range []fftypes.Layout{fftypes.RowMajor, fftypes.ColumnMajor} {
		for _, list := range axesLists {
			m, inv, err := MapAxes(4, l, list)
			if err != nil {
				t.Fatalf("MapAxes(4, %v, %v) error: %v", l, list, err)
			}

			for i := range m {
				if inv[m[i]] != i {
					t.Fatalf("layout %v axes %v: inv[map[%d]] = %d, want %d", l, list, i, inv[m[i]], i)
				}
			}
		}
	}
}

func TestMapAxesValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rank    int
		axes    []int
		wantErr error
	}{
		{"empty", 3, []int{}, ErrInvalidRank},
		{"too many", 2, []int{0, 1, 1}, ErrInvalidRank},
		{"out of range", 3, []int{3}, ErrAxisOutOfRange},
		{"negative out of range", 3, []int{-4}, ErrAxisOutOfRange},
		{"duplicate", 3, []int{1, 1}, ErrDuplicateAxis},
		{"duplicate via negative", 3, []int{2, -1}, ErrDuplicateAxis},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := MapAxes(tt.rank, fftypes.RowMajor, tt.axes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MapAxes(%d, row-major, %v) error = %v, want %v", tt.rank, tt.axes, err, tt.wantErr)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	idx, err := Normalize(-1, 4)
	if err != nil || idx != 3 {
		t.Fatalf("Normalize(-1, 4) = %d, %v, want 3, nil", idx, err)
	}

	idx, err = Normalize(2, 4)
	if err != nil || idx != 2 {
		t.Fatalf("Normalize(2, 4) = %d, %v, want 2, nil", idx, err)
	}
}
