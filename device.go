package gfx

// Device is the display collaborator. It supplies the hardware surface the
// engine ultimately presents to: dimensions, a raw writable RGB565
// little-endian pixel buffer with its row pitch, and a present operation.
//
// The device must outlive the engine instance; the engine never closes or
// frees it.
type Device interface {
	// Width returns the display width in pixels.
	Width() int

	// Height returns the display height in pixels.
	Height() int

	// Pitch returns the length in bytes of one framebuffer row.
	// Pitch is at least Width()*2 and may include padding.
	Pitch() int

	// Framebuffer returns the raw writable pixel storage. Its length is at
	// least Height()*Pitch(). The engine writes RGB565 values into it
	// little-endian, two bytes per pixel.
	Framebuffer() []byte

	// Present pushes the current framebuffer contents to the physical
	// display. For memory-mapped hardware framebuffers this is a no-op.
	Present() error
}

// MemoryDevice is an in-memory Device backed by a plain byte slice. It is
// used by tests and by host-side demos that copy the framebuffer into a
// window each frame.
type MemoryDevice struct {
	width    int
	height   int
	pitch    int
	buf      []byte
	presents int
}

var _ Device = (*MemoryDevice)(nil)

// NewMemoryDevice creates a memory device with a tightly packed framebuffer
// (pitch = width*2).
func NewMemoryDevice(width, height int) *MemoryDevice {
	pitch := width * 2
	return &MemoryDevice{
		width:  width,
		height: height,
		pitch:  pitch,
		buf:    make([]byte, pitch*height),
	}
}

// Width returns the display width in pixels.
func (d *MemoryDevice) Width() int { return d.width }

// Height returns the display height in pixels.
func (d *MemoryDevice) Height() int { return d.height }

// Pitch returns the length in bytes of one framebuffer row.
func (d *MemoryDevice) Pitch() int { return d.pitch }

// Framebuffer returns the backing pixel storage.
func (d *MemoryDevice) Framebuffer() []byte { return d.buf }

// Present counts the presentation; the buffer is already the display.
func (d *MemoryDevice) Present() error {
	d.presents++
	return nil
}

// Presents returns how many times Present has been called.
func (d *MemoryDevice) Presents() int { return d.presents }
