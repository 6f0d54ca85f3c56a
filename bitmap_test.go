package gfx

import "testing"

func TestDrawBitmap(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	// 8x2, MSB first: top row leftmost pixel, bottom row rightmost.
	dc.DrawBitmap(3, 4, []byte{0x80, 0x01}, 8, 2, White)

	if dc.Pixel(3, 4) != White {
		t.Error("MSB of row 0 landed wrong")
	}
	if dc.Pixel(10, 5) != White {
		t.Error("LSB of row 1 landed wrong")
	}
	if n := len(setPixels(dc)); n != 2 {
		t.Errorf("%d pixels set, want 2", n)
	}
}

func TestDrawBitmapRowPadding(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	// Width 10 needs 2 bytes per row; the trailing 6 bits are padding.
	bitmap := []byte{
		0x00, 0x40, // row 0: pixel x=9
		0x80, 0x00, // row 1: pixel x=0
	}
	dc.DrawBitmap(0, 0, bitmap, 10, 2, White)
	if dc.Pixel(9, 0) != White || dc.Pixel(0, 1) != White {
		t.Error("row padding handled wrong")
	}
	if n := len(setPixels(dc)); n != 2 {
		t.Errorf("%d pixels set, want 2", n)
	}
}

func TestDrawBitmapBG(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	dc.DrawBitmapBG(0, 0, []byte{0xA0}, 4, 1, White, Red)
	want := []Color{White, Red, White, Red}
	for x, c := range want {
		if got := dc.Pixel(x, 0); got != c {
			t.Errorf("Pixel(%d,0) = 0x%04X, want 0x%04X", x, got, c)
		}
	}
}

func TestDrawXBitmap(t *testing.T) {
	dc, _ := newTestContext(16, 16)
	// XBM packs LSB first: 0x01 is the leftmost pixel.
	dc.DrawXBitmap(2, 2, []byte{0x01, 0x80}, 8, 2, White)
	if dc.Pixel(2, 2) != White {
		t.Error("LSB of row 0 landed wrong")
	}
	if dc.Pixel(9, 3) != White {
		t.Error("MSB of row 1 landed wrong")
	}
	if n := len(setPixels(dc)); n != 2 {
		t.Errorf("%d pixels set, want 2", n)
	}
}

func TestDrawRGBBitmap(t *testing.T) {
	dc, _ := newTestContext(8, 8)
	pix := []Color{Red, Green, Blue, White}
	dc.DrawRGBBitmap(1, 1, pix, 2, 2)
	if dc.Pixel(1, 1) != Red || dc.Pixel(2, 1) != Green ||
		dc.Pixel(1, 2) != Blue || dc.Pixel(2, 2) != White {
		t.Error("RGB block landed wrong")
	}

	// Overhanging block clips silently.
	dc.DrawRGBBitmap(7, 7, pix, 2, 2)
	if dc.Pixel(7, 7) != Red {
		t.Error("clipped block lost its visible pixel")
	}
}

func TestDrawRGBBitmapMask(t *testing.T) {
	dc, _ := newTestContext(8, 8)
	dc.FillScreen(Blue)
	pix := []Color{Red, Green, White, Yellow}
	// Mask 0b10 01: only (0,0) and (1,1) pass.
	dc.DrawRGBBitmapMask(0, 0, pix, []byte{0x80, 0x40}, 2, 2)
	if dc.Pixel(0, 0) != Red {
		t.Error("masked-in pixel (0,0) wrong")
	}
	if dc.Pixel(1, 0) != Blue {
		t.Error("masked-out pixel (1,0) overwritten")
	}
	if dc.Pixel(1, 1) != Yellow {
		t.Error("masked-in pixel (1,1) wrong")
	}
	if dc.Pixel(0, 1) != Blue {
		t.Error("masked-out pixel (0,1) overwritten")
	}
}
