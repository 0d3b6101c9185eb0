package backend

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("kokkosfft/backend: no backend registered")

	// ErrBackendUnavailable is returned when the registered backend is
	// not usable on the current system (no device, driver missing).
	ErrBackendUnavailable = errors.New("kokkosfft/backend: backend unavailable")

	// ErrNotImplemented is returned for transform kinds a backend does
	// not support.
	ErrNotImplemented = errors.New("kokkosfft/backend: not implemented")

	// ErrInvalidDesc is returned for plan descriptions with non-positive
	// extents or batch counts.
	ErrInvalidDesc = errors.New("kokkosfft/backend: invalid plan description")

	// ErrNilSlice is returned when dst or src is nil.
	ErrNilSlice = errors.New("kokkosfft/backend: nil slice")

	// ErrLengthMismatch is returned when dst or src lengths don't match
	// the plan description.
	ErrLengthMismatch = errors.New("kokkosfft/backend: length mismatch")

	// ErrPrecisionMismatch is returned when buffers of the wrong element
	// type are passed to a plan.
	ErrPrecisionMismatch = errors.New("kokkosfft/backend: precision mismatch")
)
