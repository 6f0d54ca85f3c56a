package gfx

import "errors"

// Multi-buffer errors.
var (
	// ErrMultiBufferDisabled is returned when a buffer-selection operation
	// is called while multi-buffering is off.
	ErrMultiBufferDisabled = errors.New("gfx: multi-buffering is disabled")

	// ErrBufferIndex is returned when a buffer index is out of range.
	ErrBufferIndex = errors.New("gfx: buffer index out of range")

	// ErrBufferOwned is returned when detaching a slot the engine allocated.
	// Ownership transfer is one-directional: engine-owned buffers can only
	// be released by the engine, never handed off.
	ErrBufferOwned = errors.New("gfx: cannot detach engine-owned buffer")

	// ErrBufferSize is returned when an attached external buffer is smaller
	// than width*height*2 bytes.
	ErrBufferSize = errors.New("gfx: external buffer too small")

	// ErrNoSoftSurface is returned when multi-buffering is requested on a
	// context whose backend is not the engine-created software surface over
	// the device framebuffer. The accelerated path presents via a context
	// swap and keeps no buffer bookkeeping; injected surfaces manage their
	// own storage.
	ErrNoSoftSurface = errors.New("gfx: multi-buffering requires the software surface")
)
