package gfx

// Glyph holds the metrics of one character of a custom font and the offset
// of its image in the font's shared bitmap blob.
type Glyph struct {
	// BitmapOffset indexes into Font.Bitmap.
	BitmapOffset uint16

	// Width and Height are the bitmap dimensions in pixels.
	Width  uint8
	Height uint8

	// XAdvance is the cursor advance on the x axis.
	XAdvance uint8

	// XOffset and YOffset are the distance from the cursor position to the
	// glyph's upper-left corner.
	XOffset int8
	YOffset int8
}

// Font is a variable-metrics bitmap font: a glyph table indexed by character
// code in [First,Last] over a shared MSB-first bitmap blob.
//
// The engine holds fonts by read-only reference and never mutates or copies
// them; the font asset must outlive any context using it.
type Font struct {
	// Bitmap holds all glyph images concatenated, one bit per pixel,
	// MSB first.
	Bitmap []byte

	// Glyphs holds one entry per character code in [First,Last].
	Glyphs []Glyph

	// First and Last are the inclusive character code extents.
	First uint8
	Last  uint8

	// YAdvance is the newline distance on the y axis.
	YAdvance uint8
}

// glyph returns the table entry for c, or nil when c is outside the font's
// range.
func (f *Font) glyph(c byte) *Glyph {
	if c < f.First || c > f.Last {
		return nil
	}
	i := int(c - f.First)
	if i >= len(f.Glyphs) {
		return nil
	}
	return &f.Glyphs[i]
}

// SetFont selects a custom font for subsequent text drawing. Passing nil
// reverts to the built-in 5x8 font.
func (dc *Context) SetFont(f *Font) { dc.font = f }

// Font returns the active custom font, or nil when the built-in font is in
// use.
func (dc *Context) Font() *Font { return dc.font }
