package backend

import (
	"reflect"

	kokkosfft "github.com/OzCog/kokkos-fft"
)

// Plan is a backend-executed complex-to-complex plan for a derived
// extents bundle. The plan is safe for concurrent use only if the
// underlying backend is thread-safe.
type Plan[T Complex] struct {
	desc PlanDesc
	impl PlanImpl
}

// NewPlan creates a plan on the registered backend from a derived
// extents bundle. Returns ErrNoBackend when nothing is registered and
// ErrBackendUnavailable when the backend cannot run here.
func NewPlan[T Complex](extents kokkosfft.Extents, kind TransformKind) (*Plan[T], error) {
	desc := DescFor(extents, precisionOf[T](), kind)
	if desc.HowMany < 1 || len(desc.FFTExtents) == 0 {
		return nil, ErrInvalidDesc
	}

	for _, n := range desc.FFTExtents {
		if n < 1 {
			return nil, ErrInvalidDesc
		}
	}

	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}

	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	impl, err := b.NewPlan(desc)
	if err != nil {
		return nil, err
	}

	return &Plan[T]{desc: desc, impl: impl}, nil
}

// Desc returns the plan description handed to the backend.
func (p *Plan[T]) Desc() PlanDesc {
	return p.desc
}

// Forward executes the forward transform of src into dst. src spans
// the input side of the description, dst the output side; the two
// differ for the real transform kinds.
func (p *Plan[T]) Forward(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != p.desc.InSize() || len(dst) != p.desc.OutSize() {
		return ErrLengthMismatch
	}

	return p.impl.Forward(dst, src)
}

// Inverse executes the inverse transform of src into dst. The buffer
// roles swap relative to Forward: src spans the output side of the
// description, dst the input side.
func (p *Plan[T]) Inverse(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) != p.desc.OutSize() || len(dst) != p.desc.InSize() {
		return ErrLengthMismatch
	}

	return p.impl.Inverse(dst, src)
}

// Close releases backend resources held by the plan.
func (p *Plan[T]) Close() error {
	return p.impl.Close()
}

func precisionOf[T Complex]() PrecisionKind {
	var zero T
	if reflect.TypeOf(zero).Kind() == reflect.Complex128 {
		return PrecisionComplex128
	}

	return PrecisionComplex64
}
