package backend

import "sync"

// Backend is implemented by native FFT backends (cuFFT, FFTW, etc.).
// It is responsible for device discovery and plan creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	// NewPlan creates a backend-specific plan for the described
	// transform sizes.
	NewPlan(desc PlanDesc) (PlanImpl, error)
}

// PlanImpl is a backend-specific plan implementation.
// It is intentionally untyped to avoid leaking backend buffer types.
type PlanImpl interface {
	Desc() PlanDesc
	Forward(dst, src any) error
	Inverse(dst, src any) error
	Close() error
}

var (
	backendMu sync.RWMutex
	active    Backend
)

// RegisterBackend registers a backend. Passing nil clears it.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	active = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := getBackend()
	if b == nil {
		return BackendInfo{}, false
	}

	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := active
	backendMu.RUnlock()

	return b
}
