package gfx

// Option configures a Context during creation.
//
// Example:
//
//	// Default software rendering into the device framebuffer
//	dc := gfx.New(dev)
//
//	// Custom backend (dependency injection)
//	dc := gfx.New(dev, gfx.WithSurface(gpuSurface))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface Surface
	alloc   Allocator
}

// Allocator allocates pixel storage for engine-owned frame buffers.
// Returning an error makes EnableMultiBuffer roll back and report failure.
type Allocator func(size int) ([]byte, error)

func defaultAllocator(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// WithSurface sets a custom rasterization backend for the Context.
// Use this to inject the accelerated surface from the gpu subpackage or a
// software surface over caller-owned memory.
func WithSurface(s Surface) Option {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithBufferAllocator overrides the allocator used for engine-owned frame
// buffers. Primarily for tests that simulate allocation failure.
func WithBufferAllocator(a Allocator) Option {
	return func(o *contextOptions) {
		o.alloc = a
	}
}
