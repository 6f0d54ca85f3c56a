package gpu

import "errors"

var (
	// ErrNoBackend is returned when no Vulkan HAL backend is registered.
	ErrNoBackend = errors.New("gpu: vulkan backend not available")

	// ErrNoAdapter is returned when the instance exposes no usable adapter.
	ErrNoAdapter = errors.New("gpu: no GPU adapters found")

	// ErrNotReady is returned by operations on a surface whose device has
	// been closed.
	ErrNotReady = errors.New("gpu: surface not initialized")

	// ErrNilDevice is returned when a device handle carries no usable
	// device, for example NullDeviceHandle.
	ErrNilDevice = errors.New("gpu: device handle has no device")
)
