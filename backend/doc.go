// Package backend defines the native FFT backend interface the
// transform plans hand their derived sizes to.
//
// A backend receives a PlanDesc (transform extents, batch count, and
// the input/output extents of the transformed axes) and returns an
// executable plan. Vendor libraries (cuFFT, FFTW, and friends) slot in
// through RegisterBackend; the mock backend executes on the CPU and is
// used in tests and as a reference for backend authors.
package backend
