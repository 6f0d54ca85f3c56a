package gfx

// Context is the engine instance: one rasterization backend, one display
// device, and the cursor/text/rotation state scoped to it. Multiple
// independent contexts can coexist; nothing is process-global.
//
// A Context is single-threaded and non-reentrant. Every drawing call runs to
// completion before returning; callers must serialize access themselves.
type Context struct {
	dev  Device
	surf Surface
	soft *SoftSurface // non-nil when the engine created surf over the device framebuffer

	width  int
	height int

	rotation int
	inverted bool
	inTx     bool

	cursorX, cursorY     int
	textColor, textBG    Color
	textSizeX, textSizeY int
	textWrap             bool
	font                 *Font

	alloc Allocator
	mb    multiBuffer
}

// New creates a Context over the given display device. With no options the
// engine rasterizes on the CPU directly into the device framebuffer.
//
// A nil or unusable device leaves the context inert: every drawing call is a
// safe no-op and all buffer operations fail cleanly.
func New(dev Device, opts ...Option) *Context {
	options := contextOptions{alloc: defaultAllocator}
	for _, opt := range opts {
		opt(&options)
	}

	dc := &Context{
		dev:       dev,
		textColor: White,
		textBG:    Black,
		textSizeX: 1,
		textSizeY: 1,
		textWrap:  true,
		alloc:     options.alloc,
	}

	surf := options.surface
	if surf == nil && dev != nil {
		ss, err := NewSoftSurfaceOver(dev.Framebuffer(), dev.Width(), dev.Height(), dev.Pitch())
		if err != nil {
			Logger().Warn("device framebuffer unusable", "err", err)
		} else {
			surf = ss
			// Multi-buffering retargets this surface between frame buffers,
			// so it is wired only for the engine-created surface over the
			// device framebuffer, never for injected backends.
			dc.soft = ss
		}
	}
	if surf == nil {
		Logger().Warn("no usable backend, context is inert")
		surf = nopSurface{}
	}
	dc.surf = surf
	dc.width = surf.Width()
	dc.height = surf.Height()
	dc.mb.reset(dc)
	return dc
}

// Surface returns the active rasterization backend.
func (dc *Context) Surface() Surface { return dc.surf }

// Device returns the display device, or nil for an inert context.
func (dc *Context) Device() Device { return dc.dev }

// Width returns the drawable width in pixels, after rotation.
func (dc *Context) Width() int { return dc.width }

// Height returns the drawable height in pixels, after rotation.
func (dc *Context) Height() int { return dc.height }

// SetRotation sets the display rotation in 90-degree steps (0-3). Odd steps
// swap the reported width and height. Rotation never transforms pixels that
// are already drawn; applying it to coordinates is the caller's
// responsibility.
func (dc *Context) SetRotation(r int) {
	dc.rotation = ((r % 4) + 4) % 4
	w, h := dc.surf.Width(), dc.surf.Height()
	if dc.rotation&1 == 1 {
		w, h = h, w
	}
	dc.width, dc.height = w, h
}

// Rotation returns the current rotation step (0-3).
func (dc *Context) Rotation() int { return dc.rotation }

// InvertDisplay records the display inversion flag. Applying it is the
// display device's concern.
func (dc *Context) InvertDisplay(inverted bool) { dc.inverted = inverted }

// StartWrite begins a write transaction. It is purely a batching hint and
// carries no locking semantics.
func (dc *Context) StartWrite() { dc.inTx = true }

// EndWrite ends a write transaction and flushes the backend.
func (dc *Context) EndWrite() error {
	dc.inTx = false
	return dc.surf.Flush()
}

// DrawPixel draws a single pixel. Out-of-bounds coordinates are clipped
// silently.
func (dc *Context) DrawPixel(x, y int, c Color) {
	dc.StartWrite()
	dc.writePixel(x, y, c)
	_ = dc.EndWrite()
}

// Pixel reads a single pixel; out-of-bounds reads return 0. On accelerated
// surfaces each read is a full GPU round trip.
func (dc *Context) Pixel(x, y int) Color {
	return dc.surf.Pixel(x, y)
}

// writePixel plots one bounds-checked pixel without transaction bookkeeping.
func (dc *Context) writePixel(x, y int, c Color) {
	dc.surf.SetPixel(x, y, c)
}

// fillRowSpan plots a clipped horizontal run through the backend chokepoint.
func (dc *Context) fillRowSpan(x, y, w int, c Color) {
	dc.surf.FillRowSpan(x, y, w, c)
}

// fillColumnSpan plots a vertical run. Column spans are not pre-clipped in
// length; each pixel is bounds-checked individually.
func (dc *Context) fillColumnSpan(x, y, h int, c Color) {
	for row := y; row < y+h; row++ {
		dc.writePixel(x, row, c)
	}
}

// fillRect fills a rectangle without transaction bookkeeping.
func (dc *Context) fillRect(x, y, w, h int, c Color) {
	dc.surf.FillRect(x, y, w, h, c)
}

// DrawHLine draws a horizontal line of w pixels starting at (x,y).
func (dc *Context) DrawHLine(x, y, w int, c Color) {
	dc.StartWrite()
	dc.fillRowSpan(x, y, w, c)
	_ = dc.EndWrite()
}

// DrawVLine draws a vertical line of h pixels starting at (x,y).
func (dc *Context) DrawVLine(x, y, h int, c Color) {
	dc.StartWrite()
	dc.fillColumnSpan(x, y, h, c)
	_ = dc.EndWrite()
}

// FillRect fills an axis-aligned rectangle.
func (dc *Context) FillRect(x, y, w, h int, c Color) {
	dc.StartWrite()
	dc.fillRect(x, y, w, h, c)
	_ = dc.EndWrite()
}

// FillScreen fills the whole surface.
func (dc *Context) FillScreen(c Color) {
	dc.StartWrite()
	dc.surf.Fill(c)
	_ = dc.EndWrite()
}

// DrawRect outlines an axis-aligned rectangle.
func (dc *Context) DrawRect(x, y, w, h int, c Color) {
	dc.StartWrite()
	dc.fillRowSpan(x, y, w, c)
	dc.fillRowSpan(x, y+h-1, w, c)
	dc.fillColumnSpan(x, y, h, c)
	dc.fillColumnSpan(x+w-1, y, h, c)
	_ = dc.EndWrite()
}
