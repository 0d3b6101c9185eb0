package backend

import kokkosfft "github.com/OzCog/kokkos-fft"

// Complex is the shared complex constraint used by kokkosfft.
type Complex = kokkosfft.Complex

// PrecisionKind describes the precision of a backend plan.
type PrecisionKind uint8

const (
	PrecisionComplex64 PrecisionKind = iota
	PrecisionComplex128
)

// TransformKind describes the element-kind combination of a transform.
type TransformKind uint8

const (
	TransformC2C TransformKind = iota
	TransformR2C
	TransformC2R
)

// DeviceInfo describes an execution device.
type DeviceInfo struct {
	Name     string
	Vendor   string
	Driver   string
	MemoryMB int
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// PlanDesc is the size description a backend plans from. FFTExtents and
// HowMany go straight into the native planning call; InExtents and
// OutExtents feed any data-marshalling or stride computation the
// backend performs. All extent slices are in layout-normalized order,
// innermost axis last.
type PlanDesc struct {
	FFTExtents []int
	InExtents  []int
	OutExtents []int
	HowMany    int
	Precision  PrecisionKind
	Kind       TransformKind
}

// DescFor builds a PlanDesc from a derived extents bundle.
func DescFor(e kokkosfft.Extents, precision PrecisionKind, kind TransformKind) PlanDesc {
	return PlanDesc{
		FFTExtents: append([]int(nil), e.FFT...),
		InExtents:  append([]int(nil), e.In...),
		OutExtents: append([]int(nil), e.Out...),
		HowMany:    e.HowMany,
		Precision:  precision,
		Kind:       kind,
	}
}

// TotalSize returns the number of elements one invocation spans:
// HowMany batches of the transform extents.
func (d PlanDesc) TotalSize() int {
	size := d.HowMany
	for _, n := range d.FFTExtents {
		size *= n
	}

	return size
}

// InSize returns the element count of the input-side buffer: HowMany
// batches of the input extents. For C2C it equals TotalSize; for the
// real transforms the half-spectrum side is smaller.
func (d PlanDesc) InSize() int {
	size := d.HowMany
	for _, n := range d.InExtents {
		size *= n
	}

	return size
}

// OutSize returns the element count of the output-side buffer.
func (d PlanDesc) OutSize() int {
	size := d.HowMany
	for _, n := range d.OutExtents {
		size *= n
	}

	return size
}
