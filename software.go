package gfx

import "errors"

// ErrShortBuffer is returned when a caller-supplied pixel buffer is too
// small for the requested dimensions.
var ErrShortBuffer = errors.New("gfx: pixel buffer too small for dimensions")

// SoftSurface is the CPU rasterization backend: a contiguous row-major
// RGB565 little-endian pixel buffer with an explicit row stride. It may own
// its storage or write directly into memory supplied by a Device or a
// caller.
type SoftSurface struct {
	width  int
	height int
	stride int // bytes per row
	pix    []byte
}

var _ Surface = (*SoftSurface)(nil)

// NewSoftSurface creates a software surface with its own tightly packed
// storage (stride = width*2).
func NewSoftSurface(width, height int) *SoftSurface {
	stride := width * 2
	return &SoftSurface{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, stride*height),
	}
}

// NewSoftSurfaceOver creates a software surface writing into caller-supplied
// storage. The surface never reallocates or frees pix.
func NewSoftSurfaceOver(pix []byte, width, height, stride int) (*SoftSurface, error) {
	if stride < width*2 || len(pix) < height*stride {
		return nil, ErrShortBuffer
	}
	return &SoftSurface{width: width, height: height, stride: stride, pix: pix}, nil
}

// setTarget redirects subsequent pixel writes to a different buffer. The
// buffer manager uses this to switch between draw buffers; dimensions are
// unchanged.
func (s *SoftSurface) setTarget(pix []byte, stride int) {
	s.pix = pix
	s.stride = stride
}

// Width returns the surface width in pixels.
func (s *SoftSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *SoftSurface) Height() int { return s.height }

// Pix returns the current target pixel storage.
func (s *SoftSurface) Pix() []byte { return s.pix }

// SetPixel writes one pixel iff (x,y) is in bounds.
func (s *SoftSurface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := y*s.stride + x*2
	s.pix[i] = byte(c)
	s.pix[i+1] = byte(c >> 8)
}

// Pixel reads one pixel; out-of-bounds reads return 0.
func (s *SoftSurface) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	i := y*s.stride + x*2
	return Color(s.pix[i]) | Color(s.pix[i+1])<<8
}

// FillRowSpan writes a clipped horizontal run of pixels on row y.
func (s *SoftSurface) FillRowSpan(x, y, w int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	x0 := max(0, x)
	x1 := min(s.width, x+w)
	if x0 >= x1 {
		return
	}
	lo, hi := byte(c), byte(c>>8)
	i := y*s.stride + x0*2
	for ; x0 < x1; x0++ {
		s.pix[i] = lo
		s.pix[i+1] = hi
		i += 2
	}
}

// FillRect fills a rectangle one row span at a time.
func (s *SoftSurface) FillRect(x, y, w, h int, c Color) {
	for row := y; row < y+h; row++ {
		s.FillRowSpan(x, row, w, c)
	}
}

// Fill sets every pixel of the surface to c.
func (s *SoftSurface) Fill(c Color) {
	s.FillRect(0, 0, s.width, s.height, c)
}

// Blit copies a block of RGB565 pixels to (x,y), clipping to the surface.
func (s *SoftSurface) Blit(x, y, w, h int, pix []Color) {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return
	}
	for row := 0; row < h; row++ {
		ty := y + row
		if ty < 0 || ty >= s.height {
			continue
		}
		for col := 0; col < w; col++ {
			tx := x + col
			if tx < 0 || tx >= s.width {
				continue
			}
			c := pix[row*w+col]
			i := ty*s.stride + tx*2
			s.pix[i] = byte(c)
			s.pix[i+1] = byte(c >> 8)
		}
	}
}

// Flush is a no-op for the CPU path.
func (s *SoftSurface) Flush() error { return nil }

// Close is a no-op; storage is reclaimed by the garbage collector.
func (s *SoftSurface) Close() error { return nil }
