package gfx

import "testing"

func newTestContext(w, h int) (*Context, *MemoryDevice) {
	dev := NewMemoryDevice(w, h)
	return New(dev), dev
}

func setPixels(dc *Context) map[[2]int]Color {
	set := make(map[[2]int]Color)
	for y := 0; y < dc.Height(); y++ {
		for x := 0; x < dc.Width(); x++ {
			if c := dc.Pixel(x, y); c != 0 {
				set[[2]int{x, y}] = c
			}
		}
	}
	return set
}

func TestDrawLineEndpointSymmetry(t *testing.T) {
	endpoints := [][4]int{
		{0, 0, 7, 3},
		{1, 6, 6, 1},
		{0, 0, 0, 7}, // vertical
		{0, 3, 7, 3}, // horizontal
		{2, 2, 2, 2}, // single point
		{0, 0, 7, 7}, // diagonal
	}
	for _, e := range endpoints {
		a, _ := newTestContext(8, 8)
		b, _ := newTestContext(8, 8)
		a.DrawLine(e[0], e[1], e[2], e[3], White)
		b.DrawLine(e[2], e[3], e[0], e[1], White)

		pa, pb := setPixels(a), setPixels(b)
		if len(pa) != len(pb) {
			t.Errorf("line %v: %d pixels forward, %d reversed", e, len(pa), len(pb))
			continue
		}
		for p := range pa {
			if _, ok := pb[p]; !ok {
				t.Errorf("line %v: pixel %v only in forward direction", e, p)
			}
		}
		// Both endpoints are always plotted.
		if _, ok := pa[[2]int{e[0], e[1]}]; !ok {
			t.Errorf("line %v: start point missing", e)
		}
		if _, ok := pa[[2]int{e[2], e[3]}]; !ok {
			t.Errorf("line %v: end point missing", e)
		}
	}
}

func TestDrawCircleAxisPoints(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	dc.DrawCircle(8, 8, 5, White)

	for _, p := range [][2]int{{13, 8}, {3, 8}, {8, 13}, {8, 3}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("axis point (%d,%d) not set", p[0], p[1])
		}
	}
	if dc.Pixel(8, 8) != Black {
		t.Error("center set on outline circle")
	}
}

func TestFillCircleCoversOutline(t *testing.T) {
	outline, _ := newTestContext(16, 16)
	filled, _ := newTestContext(16, 16)
	outline.DrawCircle(8, 8, 5, White)
	filled.FillCircle(8, 8, 5, White)

	for p := range setPixels(outline) {
		if filled.Pixel(p[0], p[1]) != White {
			t.Errorf("outline pixel %v missing from fill", p)
		}
	}
	if filled.Pixel(8, 8) != White {
		t.Error("center not filled")
	}
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		r, w, h, want int
	}{
		{3, 20, 20, 3},
		{15, 20, 20, 10},
		{15, 20, 8, 4},
		{0, 20, 20, 0},
	}
	for _, tt := range tests {
		if got := clampRadius(tt.r, tt.w, tt.h); got != tt.want {
			t.Errorf("clampRadius(%d, %d, %d) = %d, want %d", tt.r, tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFillRoundRectZeroRadiusEqualsFillRect(t *testing.T) {
	a, _ := newTestContext(16, 16)
	b, _ := newTestContext(16, 16)
	a.FillRoundRect(2, 3, 10, 8, 0, White)
	b.FillRect(2, 3, 10, 8, White)

	pa, pb := setPixels(a), setPixels(b)
	if len(pa) != len(pb) {
		t.Fatalf("%d pixels with r=0, %d with FillRect", len(pa), len(pb))
	}
	for p := range pb {
		if _, ok := pa[p]; !ok {
			t.Errorf("pixel %v missing from r=0 round rect", p)
		}
	}
}

func TestFillRoundRectCorners(t *testing.T) {
	dc, _ := newTestContext(24, 24)
	dc.FillRoundRect(2, 2, 20, 20, 6, White)

	// Sharp corner pixels stay clear, the rounded interior is filled.
	for _, p := range [][2]int{{2, 2}, {21, 2}, {2, 21}, {21, 21}} {
		if dc.Pixel(p[0], p[1]) != Black {
			t.Errorf("corner pixel (%d,%d) filled, want clear", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{12, 2}, {2, 12}, {21, 12}, {12, 21}, {12, 12}, {18, 18}, {5, 5}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("interior pixel (%d,%d) not filled", p[0], p[1])
		}
	}
	// Edge midpoints on all four sides are filled (no gap between the
	// straight rectangles and the corner fills).
	for _, p := range [][2]int{{8, 2}, {8, 21}, {2, 8}, {21, 8}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("edge pixel (%d,%d) not filled", p[0], p[1])
		}
	}
}

func TestDrawRoundRectOutline(t *testing.T) {
	dc, _ := newTestContext(24, 24)
	dc.DrawRoundRect(2, 2, 20, 20, 6, White)

	// Edge midpoints set, sharp corners clear, interior clear.
	for _, p := range [][2]int{{12, 2}, {12, 21}, {2, 12}, {21, 12}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("edge pixel (%d,%d) not set", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{2, 2}, {21, 21}, {12, 12}} {
		if dc.Pixel(p[0], p[1]) != Black {
			t.Errorf("pixel (%d,%d) set, want clear", p[0], p[1])
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	// All three vertices on one scanline collapse to a single span from the
	// minimum to the maximum x.
	dc, _ := newTestContext(16, 16)
	dc.FillTriangle(3, 5, 10, 5, 7, 5, White)

	for x := 3; x <= 10; x++ {
		if dc.Pixel(x, 5) != White {
			t.Errorf("span pixel (%d,5) not set", x)
		}
	}
	if got := len(setPixels(dc)); got != 8 {
		t.Errorf("%d pixels set, want 8", got)
	}
}

func TestFillTriangle(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	dc.FillTriangle(1, 1, 13, 1, 1, 13, White)

	// Vertices and interior are covered.
	for _, p := range [][2]int{{1, 1}, {13, 1}, {1, 13}, {4, 4}, {2, 10}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("pixel (%d,%d) not filled", p[0], p[1])
		}
	}
	// Beyond the hypotenuse stays clear.
	if dc.Pixel(13, 13) != Black {
		t.Error("pixel (13,13) filled, want clear")
	}

	// Vertex order must not change the fill.
	perm, _ := newTestContext(16, 16)
	perm.FillTriangle(1, 13, 1, 1, 13, 1, White)
	pa, pb := setPixels(dc), setPixels(perm)
	if len(pa) != len(pb) {
		t.Fatalf("%d pixels vs %d after vertex permutation", len(pa), len(pb))
	}
	for p := range pa {
		if _, ok := pb[p]; !ok {
			t.Errorf("pixel %v missing after vertex permutation", p)
		}
	}
}

func TestDrawTriangle(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	dc.DrawTriangle(2, 2, 12, 2, 7, 12, White)
	for _, p := range [][2]int{{2, 2}, {12, 2}, {7, 12}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("vertex (%d,%d) not set", p[0], p[1])
		}
	}
	if dc.Pixel(7, 5) != Black {
		t.Error("interior filled on outline triangle")
	}
}

func TestShapesClipSilently(t *testing.T) {
	dc, _ := newTestContext(8, 8)
	// Every call reaches outside the surface; none may panic.
	dc.DrawLine(-10, -10, 20, 20, White)
	dc.DrawCircle(0, 0, 6, White)
	dc.FillCircle(7, 7, 6, White)
	dc.FillTriangle(-5, -5, 15, 0, 0, 15, White)
	dc.DrawRoundRect(-2, -2, 12, 12, 3, White)
	dc.FillRoundRect(4, 4, 10, 10, 3, White)
	dc.FillRect(-3, -3, 20, 20, White)
}
