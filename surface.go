package gfx

// Surface is the rasterization target abstraction. The same high-level
// drawing calls work against a CPU-owned pixel buffer (SoftSurface) or a
// GPU pipeline (the gpu subpackage); the backend is selected at construction
// time via WithSurface.
//
// Every method that takes coordinates clips silently: painting outside the
// surface bounds is a no-op, never an error. Surfaces are not safe for
// concurrent use.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetPixel writes one pixel iff (x,y) is in bounds.
	SetPixel(x, y int, c Color)

	// Pixel reads one pixel; out-of-bounds reads return zero. Accelerated
	// surfaces round-trip to the GPU per call, so keep this off hot paths.
	Pixel(x, y int) Color

	// FillRowSpan writes a horizontal run of w pixels starting at (x,y).
	// The run is clipped to [0,Width); if y is out of bounds the whole call
	// is a no-op. This is the single chokepoint every shape funnels through.
	FillRowSpan(x, y, w int, c Color)

	// FillRect fills an axis-aligned rectangle, clipped to the surface.
	FillRect(x, y, w, h int, c Color)

	// Fill sets every pixel of the surface to c.
	Fill(c Color)

	// Blit copies a w x h block of RGB565 pixels to (x,y), clipped to the
	// surface. pix is row-major with no padding; len(pix) must be >= w*h.
	Blit(x, y, w, h int, pix []Color)

	// Flush completes pending work. A no-op for CPU surfaces; GPU surfaces
	// submit queued dispatches.
	Flush() error

	// Close releases backend resources. Close is idempotent.
	Close() error
}

// nopSurface keeps a context without a usable backend inert: every drawing
// call is a safe no-op. Constructed when New is given a nil device.
type nopSurface struct{}

var _ Surface = nopSurface{}

func (nopSurface) Width() int                       { return 0 }
func (nopSurface) Height() int                      { return 0 }
func (nopSurface) SetPixel(int, int, Color)         {}
func (nopSurface) Pixel(int, int) Color             { return 0 }
func (nopSurface) FillRowSpan(int, int, int, Color) {}
func (nopSurface) FillRect(int, int, int, int, Color) {
}
func (nopSurface) Fill(Color)                         {}
func (nopSurface) Blit(int, int, int, int, []Color)   {}
func (nopSurface) Flush() error                       { return nil }
func (nopSurface) Close() error                       { return nil }
