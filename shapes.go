package gfx

// Corner masks for the circle helpers. Each bit selects one octant pair;
// the draw helper uses all four, the fill helper only the left/right pairs.
const (
	cornerTopLeft     = 0x1
	cornerTopRight    = 0x2
	cornerBottomRight = 0x4
	cornerBottomLeft  = 0x8
	fillCornerRight   = 0x1
	fillCornerLeft    = 0x2
)

// DrawLine draws an integer Bresenham line between two endpoints. Both
// endpoints are plotted, and swapping them produces the same pixel set.
func (dc *Context) DrawLine(x0, y0, x1, y1 int, c Color) {
	dc.StartWrite()
	dc.writeLine(x0, y0, x1, y1, c)
	_ = dc.EndWrite()
}

func (dc *Context) writeLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		dc.writePixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm. For radius
// r centered at (x0,y0) the four axis points (x0±r,y0) and (x0,y0±r) are
// always set.
func (dc *Context) DrawCircle(x0, y0, r int, c Color) {
	dc.StartWrite()
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	dc.writePixel(x0, y0+r, c)
	dc.writePixel(x0, y0-r, c)
	dc.writePixel(x0+r, y0, c)
	dc.writePixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		dc.writePixel(x0+x, y0+y, c)
		dc.writePixel(x0-x, y0+y, c)
		dc.writePixel(x0+x, y0-y, c)
		dc.writePixel(x0-x, y0-y, c)
		dc.writePixel(x0+y, y0+x, c)
		dc.writePixel(x0-y, y0+x, c)
		dc.writePixel(x0+y, y0-x, c)
		dc.writePixel(x0-y, y0-x, c)
	}
	_ = dc.EndWrite()
}

// drawCircleCorner draws the arc octants selected by the corner mask,
// restricting output to one quadrant per set bit. Used to compose rounded
// rectangle corners without redrawing the full circle.
func (dc *Context) drawCircleCorner(x0, y0, r int, corners uint8, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if corners&cornerBottomRight != 0 {
			dc.writePixel(x0+x, y0+y, c)
			dc.writePixel(x0+y, y0+x, c)
		}
		if corners&cornerTopRight != 0 {
			dc.writePixel(x0+x, y0-y, c)
			dc.writePixel(x0+y, y0-x, c)
		}
		if corners&cornerBottomLeft != 0 {
			dc.writePixel(x0-y, y0+x, c)
			dc.writePixel(x0-x, y0+y, c)
		}
		if corners&cornerTopLeft != 0 {
			dc.writePixel(x0-y, y0-x, c)
			dc.writePixel(x0-x, y0-y, c)
		}
	}
}

// fillCircleCorner fills the left and/or right halves of a circle with
// vertical spans. delta extends each span downward; rounded rectangle fills
// use it so corner fills meet the straight-edge rectangle without overlap.
func (dc *Context) fillCircleCorner(x0, y0, r int, corners uint8, delta int, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		if corners&fillCornerRight != 0 {
			dc.fillColumnSpan(x0+x, y0-y, 2*y+1+delta, c)
			dc.fillColumnSpan(x0+y, y0-x, 2*x+1+delta, c)
		}
		if corners&fillCornerLeft != 0 {
			dc.fillColumnSpan(x0-x, y0-y, 2*y+1+delta, c)
			dc.fillColumnSpan(x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// FillCircle fills a circle: one full vertical span through the center plus
// both masked corner fills.
func (dc *Context) FillCircle(x0, y0, r int, c Color) {
	dc.StartWrite()
	dc.fillColumnSpan(x0, y0-r, 2*r+1, c)
	dc.fillCircleCorner(x0, y0, r, fillCornerRight|fillCornerLeft, 0, c)
	_ = dc.EndWrite()
}

// clampRadius limits a rounded-rect radius to half the shorter side. A
// larger caller-supplied radius is silently reduced, never an error.
func clampRadius(r, w, h int) int {
	if m := min(w, h) / 2; r > m {
		return m
	}
	return r
}

// DrawRoundRect outlines a rounded rectangle: four inset straight edges
// plus four quadrant arcs.
func (dc *Context) DrawRoundRect(x, y, w, h, r int, c Color) {
	r = clampRadius(r, w, h)
	dc.StartWrite()
	dc.fillRowSpan(x+r, y, w-2*r, c)
	dc.fillRowSpan(x+r, y+h-1, w-2*r, c)
	dc.fillColumnSpan(x, y+r, h-2*r, c)
	dc.fillColumnSpan(x+w-1, y+r, h-2*r, c)

	dc.drawCircleCorner(x+r, y+r, r, cornerTopLeft, c)
	dc.drawCircleCorner(x+w-r-1, y+r, r, cornerTopRight, c)
	dc.drawCircleCorner(x+w-r-1, y+h-r-1, r, cornerBottomRight, c)
	dc.drawCircleCorner(x+r, y+h-r-1, r, cornerBottomLeft, c)
	_ = dc.EndWrite()
}

// FillRoundRect fills a rounded rectangle: three straight-edge rectangles
// plus two masked corner fills with a height delta so nothing overlaps.
func (dc *Context) FillRoundRect(x, y, w, h, r int, c Color) {
	r = clampRadius(r, w, h)
	dc.StartWrite()
	dc.fillRect(x+r, y, w-2*r, h, c)
	dc.fillRect(x, y+r, r, h-2*r, c)
	dc.fillRect(x+w-r, y+r, r, h-2*r, c)

	dc.fillCircleCorner(x+w-r-1, y+r, r, fillCornerRight, h-2*r-1, c)
	dc.fillCircleCorner(x+r, y+r, r, fillCornerLeft, h-2*r-1, c)
	_ = dc.EndWrite()
}

// DrawTriangle outlines a triangle as three lines.
func (dc *Context) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	dc.DrawLine(x0, y0, x1, y1, c)
	dc.DrawLine(x1, y1, x2, y2, c)
	dc.DrawLine(x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle with horizontal scanline spans, vertices
// sorted by ascending y and the left/right boundaries interpolated
// incrementally for the top and bottom halves.
func (dc *Context) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dc.StartWrite()
	if y0 == y2 {
		// All on the same scanline: a single span from min to max x.
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		dc.fillRowSpan(a, y0, b-a+1, c)
		_ = dc.EndWrite()
		return
	}

	dx01 := x1 - x0
	dy01 := y1 - y0
	dx02 := x2 - x0
	dy02 := y2 - y0
	dx12 := x2 - x1
	dy12 := y2 - y1

	// The split row y1 belongs to the bottom half only when the 0-1 edge is
	// flat; otherwise the top half stops one row above it.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	sa, sb := 0, 0
	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		dc.fillRowSpan(a, y, b-a+1, c)
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		dc.fillRowSpan(a, y, b-a+1, c)
	}
	_ = dc.EndWrite()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
