package ggchart

import "errors"

// Renderer errors. Initialization failures are recoverable: the renderer
// enters fallback mode and the host presents a non-GPU notice instead of
// crashing. Draw-time errors abort only the current frame.
var (
	// ErrNoBackend is returned when no WebGPU backend is registered.
	ErrNoBackend = errors.New("ggchart: no GPU backend available")

	// ErrNoAdapter is returned when the backend exposes no usable GPU adapter.
	ErrNoAdapter = errors.New("ggchart: no GPU adapters found")

	// ErrNotInitialized is returned by Draw when Initialize has not
	// succeeded and no shared device has been provided.
	ErrNotInitialized = errors.New("ggchart: renderer not initialized")

	// ErrDestroyed is returned when a destroyed renderer is reused.
	ErrDestroyed = errors.New("ggchart: renderer destroyed")

	// ErrBadDeviceProvider is returned by SetDeviceProvider when the
	// provider does not expose usable HAL device and queue handles.
	ErrBadDeviceProvider = errors.New("ggchart: provider does not expose HAL types")
)
