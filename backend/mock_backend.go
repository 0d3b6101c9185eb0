package backend

import (
	"fmt"

	kokkosfft "github.com/OzCog/kokkos-fft"
)

// MockBackend is a CPU-backed backend for development and tests.
// It satisfies the backend interfaces but executes through the portable
// engine, planning each batch block as a row-major transform over the
// trailing axes.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:   "MockDevice",
			Vendor: "kokkosfft",
			Driver: "mock",
		},
	}
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

// NewPlan creates a CPU plan for the described sizes. Only
// complex-to-complex transforms are supported; the real variants run
// through the typed RealPlan API instead.
func (b *MockBackend) NewPlan(desc PlanDesc) (PlanImpl, error) {
	if desc.Kind != TransformC2C {
		return nil, ErrNotImplemented
	}

	switch desc.Precision {
	case PrecisionComplex64:
		return newMockPlan[complex64](desc)
	case PrecisionComplex128:
		return newMockPlan[complex128](desc)
	default:
		return nil, ErrNotImplemented
	}
}

// mockPlan folds the batch count into a leading axis and reuses the
// portable ND plan for execution.
type mockPlan[T Complex] struct {
	desc PlanDesc
	plan *kokkosfft.Plan[T]
}

func newMockPlan[T Complex](desc PlanDesc) (PlanImpl, error) {
	extents := append([]int{desc.HowMany}, desc.FFTExtents...)

	view, err := kokkosfft.NewView[T](kokkosfft.RowMajor, extents...)
	if err != nil {
		return nil, fmt.Errorf("mock backend: %w", err)
	}

	fftAxes := make([]int, len(desc.FFTExtents))
	for i := range fftAxes {
		fftAxes[i] = i + 1
	}

	plan, err := kokkosfft.NewPlan[T](view, view, fftAxes...)
	if err != nil {
		return nil, fmt.Errorf("mock backend: %w", err)
	}

	return &mockPlan[T]{desc: desc, plan: plan}, nil
}

func (p *mockPlan[T]) Desc() PlanDesc {
	return p.desc
}

func (p *mockPlan[T]) Forward(dst, src any) error {
	d, s, err := p.buffers(dst, src)
	if err != nil {
		return err
	}

	return p.plan.Forward(d, s)
}

func (p *mockPlan[T]) Inverse(dst, src any) error {
	d, s, err := p.buffers(dst, src)
	if err != nil {
		return err
	}

	return p.plan.Inverse(d, s)
}

func (p *mockPlan[T]) Close() error {
	return nil
}

func (p *mockPlan[T]) buffers(dst, src any) (d, s []T, err error) {
	d, ok := dst.([]T)
	if !ok {
		return nil, nil, ErrPrecisionMismatch
	}

	s, ok = src.([]T)
	if !ok {
		return nil, nil, ErrPrecisionMismatch
	}

	return d, s, nil
}
