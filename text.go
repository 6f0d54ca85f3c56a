package gfx

import "io"

// SetCursor moves the text cursor. Coordinates are signed and may lie
// outside the surface transiently; clipping happens per pixel at draw time.
func (dc *Context) SetCursor(x, y int) {
	dc.cursorX = x
	dc.cursorY = y
}

// CursorX returns the cursor x position.
func (dc *Context) CursorX() int { return dc.cursorX }

// CursorY returns the cursor y position.
func (dc *Context) CursorY() int { return dc.cursorY }

// SetTextColor sets the foreground color and resets the background to
// black. Use SetTextColorBG with equal colors for transparent text.
func (dc *Context) SetTextColor(c Color) {
	dc.textColor = c
	dc.textBG = Black
}

// SetTextColorBG sets foreground and background colors. Passing the same
// value for both draws transparent text (set bits only).
func (dc *Context) SetTextColorBG(c, bg Color) {
	dc.textColor = c
	dc.textBG = bg
}

// SetTextSize sets a uniform glyph scale factor. Zero is treated as 1.
func (dc *Context) SetTextSize(s int) {
	dc.SetTextSizeXY(s, s)
}

// SetTextSizeXY sets independent x and y glyph scale factors. Zero values
// are treated as 1.
func (dc *Context) SetTextSizeXY(sx, sy int) {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	dc.textSizeX = sx
	dc.textSizeY = sy
}

// SetTextWrap enables or disables automatic line wrapping in WriteText.
func (dc *Context) SetTextWrap(wrap bool) { dc.textWrap = wrap }

// DrawChar draws a single character at (x,y) with explicit colors and scale
// factors. It performs pixel output only and never moves the cursor; all
// cursor bookkeeping belongs to WriteText.
func (dc *Context) DrawChar(x, y int, char byte, c, bg Color, sizeX, sizeY int) {
	if sizeX < 1 {
		sizeX = 1
	}
	if sizeY < 1 {
		sizeY = 1
	}
	if dc.font == nil {
		dc.drawBuiltinChar(x, y, char, c, bg, sizeX, sizeY)
		return
	}
	dc.drawFontChar(x, y, char, c, sizeX, sizeY)
}

// drawBuiltinChar renders one 5x8 glyph column-major from the built-in
// table. Background pixels are drawn only when bg differs from the
// foreground; equal colors request transparent text.
func (dc *Context) drawBuiltinChar(x, y int, char byte, c, bg Color, sizeX, sizeY int) {
	if x >= dc.width || y >= dc.height ||
		x+builtinXAdvance*sizeX-1 < 0 || y+builtinYAdvance*sizeY-1 < 0 {
		return
	}
	if char < builtinFirst || char > builtinLast {
		char = '?'
	}
	idx := int(char-builtinFirst) * 5

	dc.StartWrite()
	for i := 0; i < 5; i++ {
		line := builtinFont[idx+i]
		for j := 0; j < 8; j, line = j+1, line>>1 {
			if line&1 != 0 {
				if sizeX == 1 && sizeY == 1 {
					dc.writePixel(x+i, y+j, c)
				} else {
					dc.fillRect(x+i*sizeX, y+j*sizeY, sizeX, sizeY, c)
				}
			} else if bg != c {
				if sizeX == 1 && sizeY == 1 {
					dc.writePixel(x+i, y+j, bg)
				} else {
					dc.fillRect(x+i*sizeX, y+j*sizeY, sizeX, sizeY, bg)
				}
			}
		}
	}
	// Spacer column between characters, filled only for opaque text.
	if bg != c {
		if sizeX == 1 && sizeY == 1 {
			dc.fillColumnSpan(x+5, y, 8, bg)
		} else {
			dc.fillRect(x+5*sizeX, y, sizeX, 8*sizeY, bg)
		}
	}
	_ = dc.EndWrite()
}

// drawFontChar renders one custom-font glyph: set bits only, no background
// fill. Characters outside the font range are skipped entirely.
func (dc *Context) drawFontChar(x, y int, char byte, c Color, sizeX, sizeY int) {
	g := dc.font.glyph(char)
	if g == nil {
		return
	}

	bo := int(g.BitmapOffset)
	w := int(g.Width)
	h := int(g.Height)
	xo := int(g.XOffset)
	yo := int(g.YOffset)

	var bits uint8
	bit := 0

	dc.StartWrite()
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if bit&7 == 0 {
				bits = dc.font.Bitmap[bo]
				bo++
			}
			bit++
			if bits&0x80 != 0 {
				if sizeX == 1 && sizeY == 1 {
					dc.writePixel(x+xo+xx, y+yo+yy, c)
				} else {
					dc.fillRect(x+(xo+xx)*sizeX, y+(yo+yy)*sizeY, sizeX, sizeY, c)
				}
			}
			bits <<= 1
		}
	}
	_ = dc.EndWrite()
}

// WriteText draws a byte string at the cursor, advancing it per character.
// '\n' resets x and advances y by one scaled line; '\r' is consumed
// silently. When wrapping is enabled and a glyph's drawn extent would cross
// the surface width, the line break happens before the glyph is drawn.
func (dc *Context) WriteText(text string) {
	for i := 0; i < len(text); i++ {
		dc.writeByte(text[i])
	}
}

// Write implements io.Writer so formatted output can be printed at the
// cursor with fmt.Fprintf.
func (dc *Context) Write(p []byte) (int, error) {
	for _, b := range p {
		dc.writeByte(b)
	}
	return len(p), nil
}

var _ io.Writer = (*Context)(nil)

func (dc *Context) writeByte(b byte) {
	if dc.font == nil {
		dc.writeBuiltinByte(b)
		return
	}
	dc.writeFontByte(b)
}

func (dc *Context) writeBuiltinByte(b byte) {
	switch {
	case b == '\n':
		dc.cursorX = 0
		dc.cursorY += dc.textSizeY * builtinYAdvance
	case b == '\r':
		// Consumed silently.
	default:
		if dc.textWrap && dc.cursorX+dc.textSizeX*builtinXAdvance > dc.width {
			dc.cursorX = 0
			dc.cursorY += dc.textSizeY * builtinYAdvance
		}
		dc.DrawChar(dc.cursorX, dc.cursorY, b, dc.textColor, dc.textBG,
			dc.textSizeX, dc.textSizeY)
		dc.cursorX += dc.textSizeX * builtinXAdvance
	}
}

func (dc *Context) writeFontByte(b byte) {
	switch {
	case b == '\n':
		dc.cursorX = 0
		dc.cursorY += dc.textSizeY * int(dc.font.YAdvance)
	case b == '\r':
		// Consumed silently.
	default:
		g := dc.font.glyph(b)
		if g == nil {
			// Outside the font range: no draw, no advance.
			return
		}
		if g.Width > 0 && g.Height > 0 {
			if dc.textWrap &&
				dc.cursorX+dc.textSizeX*(int(g.XOffset)+int(g.Width)) > dc.width {
				dc.cursorX = 0
				dc.cursorY += dc.textSizeY * int(dc.font.YAdvance)
			}
			dc.DrawChar(dc.cursorX, dc.cursorY, b, dc.textColor, dc.textBG,
				dc.textSizeX, dc.textSizeY)
		}
		// Whitespace glyphs still advance.
		dc.cursorX += dc.textSizeX * int(g.XAdvance)
	}
}
