package gfx

import "testing"

func TestNewNilDeviceIsInert(t *testing.T) {
	dc := New(nil)
	if dc.Width() != 0 || dc.Height() != 0 {
		t.Errorf("inert context size = %dx%d, want 0x0", dc.Width(), dc.Height())
	}

	// Nothing may panic.
	dc.DrawPixel(10, 10, White)
	dc.FillScreen(Red)
	dc.DrawLine(0, 0, 50, 50, Green)
	dc.FillCircle(5, 5, 3, Blue)
	dc.WriteText("hello")
	if got := dc.Pixel(0, 0); got != 0 {
		t.Errorf("Pixel on inert context = 0x%04X, want 0", got)
	}

	if err := dc.EnableMultiBuffer(2); err != ErrNoSoftSurface {
		t.Errorf("EnableMultiBuffer = %v, want ErrNoSoftSurface", err)
	}
}

func TestSetRotation(t *testing.T) {
	dev := NewMemoryDevice(30, 20)
	dc := New(dev)

	tests := []struct {
		r            int
		wantW, wantH int
		wantR        int
	}{
		{0, 30, 20, 0},
		{1, 20, 30, 1},
		{2, 30, 20, 2},
		{3, 20, 30, 3},
		{4, 30, 20, 0},
		{-1, 20, 30, 3},
	}
	for _, tt := range tests {
		dc.SetRotation(tt.r)
		if dc.Width() != tt.wantW || dc.Height() != tt.wantH || dc.Rotation() != tt.wantR {
			t.Errorf("SetRotation(%d): %dx%d rot %d, want %dx%d rot %d",
				tt.r, dc.Width(), dc.Height(), dc.Rotation(), tt.wantW, tt.wantH, tt.wantR)
		}
	}

	// Repeating the same odd rotation must not swap dimensions again.
	dc.SetRotation(1)
	dc.SetRotation(1)
	if dc.Width() != 20 || dc.Height() != 30 {
		t.Errorf("repeated SetRotation(1): %dx%d, want 20x30", dc.Width(), dc.Height())
	}
}

func TestDrawPixelToFramebuffer(t *testing.T) {
	dev := NewMemoryDevice(8, 8)
	dc := New(dev)
	dc.DrawPixel(3, 5, 0x1234)

	fb := dev.Framebuffer()
	i := 5*dev.Pitch() + 3*2
	if fb[i] != 0x34 || fb[i+1] != 0x12 {
		t.Errorf("framebuffer bytes = %02X %02X, want 34 12", fb[i], fb[i+1])
	}
	if got := dc.Pixel(3, 5); got != 0x1234 {
		t.Errorf("Pixel(3,5) = 0x%04X, want 0x1234", got)
	}
}

func TestFillScreen(t *testing.T) {
	dev := NewMemoryDevice(4, 4)
	dc := New(dev)
	dc.FillScreen(Magenta)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dc.Pixel(x, y); got != Magenta {
				t.Fatalf("Pixel(%d,%d) = 0x%04X, want 0x%04X", x, y, got, Magenta)
			}
		}
	}
}

func TestDrawRect(t *testing.T) {
	dev := NewMemoryDevice(10, 10)
	dc := New(dev)
	dc.DrawRect(2, 3, 5, 4, White)

	// Corners and edges set, interior and outside untouched.
	for _, p := range [][2]int{{2, 3}, {6, 3}, {2, 6}, {6, 6}, {4, 3}, {2, 5}} {
		if dc.Pixel(p[0], p[1]) != White {
			t.Errorf("edge pixel (%d,%d) not set", p[0], p[1])
		}
	}
	for _, p := range [][2]int{{3, 4}, {5, 5}, {1, 3}, {7, 6}} {
		if dc.Pixel(p[0], p[1]) != Black {
			t.Errorf("pixel (%d,%d) set, want untouched", p[0], p[1])
		}
	}
}

func TestHVLines(t *testing.T) {
	dev := NewMemoryDevice(10, 10)
	dc := New(dev)
	dc.DrawHLine(1, 2, 4, Red)
	dc.DrawVLine(7, 1, 3, Blue)

	for x := 1; x < 5; x++ {
		if dc.Pixel(x, 2) != Red {
			t.Errorf("h-line pixel (%d,2) not set", x)
		}
	}
	if dc.Pixel(5, 2) != Black || dc.Pixel(0, 2) != Black {
		t.Error("h-line leaked beyond extent")
	}
	for y := 1; y < 4; y++ {
		if dc.Pixel(7, y) != Blue {
			t.Errorf("v-line pixel (7,%d) not set", y)
		}
	}
	if dc.Pixel(7, 4) != Black || dc.Pixel(7, 0) != Black {
		t.Error("v-line leaked beyond extent")
	}
}

func TestEndWriteFlushes(t *testing.T) {
	dev := NewMemoryDevice(4, 4)
	dc := New(dev)
	dc.StartWrite()
	dc.writePixel(0, 0, White)
	if err := dc.EndWrite(); err != nil {
		t.Fatalf("EndWrite: %v", err)
	}
}

func TestWithSurfaceInjection(t *testing.T) {
	// An explicitly injected surface wins over the device framebuffer.
	s := NewSoftSurface(6, 6)
	dev := NewMemoryDevice(4, 4)
	dc := New(dev, WithSurface(s))
	if dc.Width() != 6 || dc.Height() != 6 {
		t.Errorf("context size = %dx%d, want 6x6", dc.Width(), dc.Height())
	}
	dc.DrawPixel(5, 5, White)
	if s.Pixel(5, 5) != White {
		t.Error("draw did not reach the injected surface")
	}
	for _, b := range dev.Framebuffer() {
		if b != 0 {
			t.Fatal("device framebuffer modified despite injected surface")
		}
	}
}
