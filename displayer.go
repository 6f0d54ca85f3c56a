package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Displayer adapts a Context to the tinygo drivers.Displayer interface so
// driver-ecosystem font and widget packages can draw through the engine.
type Displayer struct {
	dc *Context
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns a drivers.Displayer view of the context.
func (dc *Context) Displayer() *Displayer { return &Displayer{dc: dc} }

// Size returns the rotated display dimensions.
func (d *Displayer) Size() (int16, int16) {
	return int16(d.dc.Width()), int16(d.dc.Height())
}

// SetPixel plots one pixel, converting through the RGB565 color model.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.dc.DrawPixel(int(x), int(y), FromColor(c))
}

// Display presents the frame. With multi-buffering active this swaps
// buffers; otherwise it flushes and presents directly.
func (d *Displayer) Display() error {
	return d.dc.SwapBuffers(false)
}

// WriteFonter renders a string with a tinyfont font at (x, y) using the
// tinyfont baseline convention.
func (dc *Context) WriteFonter(f tinyfont.Fonter, x, y int, s string, c Color) {
	r, g, b, _ := c.RGBA()
	rgba := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xFF}
	tinyfont.WriteLine(dc.Displayer(), f, int16(x), int16(y), s, rgba)
}

// FonterLineWidth measures a string in a tinyfont font and returns its
// inner and outer width in pixels.
func FonterLineWidth(f tinyfont.Fonter, s string) (inner, outer uint32) {
	return tinyfont.LineWidth(f, s)
}
