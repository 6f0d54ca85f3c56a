package gfx

// DrawBitmap draws a 1-bit bitmap at (x,y) in the given color. Rows are
// packed MSB first, (w+7)/8 bytes per row; clear bits leave the surface
// untouched.
func (dc *Context) DrawBitmap(x, y int, bitmap []byte, w, h int, c Color) {
	byteWidth := (w + 7) / 8
	var b uint8

	dc.StartWrite()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				dc.writePixel(x+i, y+j, c)
			}
		}
	}
	_ = dc.EndWrite()
}

// DrawBitmapBG draws a 1-bit bitmap with an explicit background color for
// clear bits.
func (dc *Context) DrawBitmapBG(x, y int, bitmap []byte, w, h int, c, bg Color) {
	byteWidth := (w + 7) / 8
	var b uint8

	dc.StartWrite()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				dc.writePixel(x+i, y+j, c)
			} else {
				dc.writePixel(x+i, y+j, bg)
			}
		}
	}
	_ = dc.EndWrite()
}

// DrawXBitmap draws an XBM-format bitmap: rows packed LSB first, set bits
// only.
func (dc *Context) DrawXBitmap(x, y int, bitmap []byte, w, h int, c Color) {
	byteWidth := (w + 7) / 8
	var b uint8

	dc.StartWrite()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b >>= 1
			} else {
				b = bitmap[j*byteWidth+i/8]
			}
			if b&0x01 != 0 {
				dc.writePixel(x+i, y+j, c)
			}
		}
	}
	_ = dc.EndWrite()
}

// DrawRGBBitmap blits a w x h block of RGB565 pixels at (x,y). The block
// funnels through the backend's bulk blit so the accelerated surface issues
// a single upload instead of per-pixel draws.
func (dc *Context) DrawRGBBitmap(x, y int, pix []Color, w, h int) {
	dc.StartWrite()
	dc.surf.Blit(x, y, w, h, pix)
	_ = dc.EndWrite()
}

// DrawRGBBitmapMask blits an RGB565 block through a 1-bit mask: only pixels
// whose mask bit is set are drawn. Mask rows are packed MSB first.
func (dc *Context) DrawRGBBitmapMask(x, y int, pix []Color, mask []byte, w, h int) {
	byteWidth := (w + 7) / 8
	var b uint8

	dc.StartWrite()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = mask[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				dc.writePixel(x+i, y+j, pix[j*w+i])
			}
		}
	}
	_ = dc.EndWrite()
}
