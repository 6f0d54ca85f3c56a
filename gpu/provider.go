package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceHandle provides GPU device access from a host application.
//
// Host frameworks (e.g. gogpu.App) implement gpucontext.DeviceProvider and
// hand it to the surface, so the surface shares the host's device instead
// of creating its own. The provider's Device and Queue tokens must carry
// hal.Device and hal.Queue for this package to use them; see
// SetDeviceHandle. Providers whose concrete type instead exposes
// HalDevice() any and HalQueue() any go through SetDeviceProvider.
type DeviceHandle = gpucontext.DeviceProvider

// SetDeviceHandle switches the surface to a shared GPU device from a typed
// provider. Handles with no device, such as NullDeviceHandle, are rejected
// with ErrNilDevice and leave the surface untouched.
func (s *Surface) SetDeviceHandle(h DeviceHandle) error {
	if h == nil {
		return ErrNilDevice
	}
	device, ok := h.Device().(hal.Device)
	if !ok || device == nil {
		return ErrNilDevice
	}
	queue, ok := h.Queue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu: device handle queue is not hal.Queue")
	}
	return s.adoptDevice(device, queue)
}

// NullDeviceHandle is a DeviceHandle with nil implementations, used where
// no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}
