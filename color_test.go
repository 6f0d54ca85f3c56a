package gfx

import (
	"image/color"
	"testing"
)

var _ color.Color = Color(0)

func TestColor565(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"white", 255, 255, 255, 0xFFFF},
		{"black", 0, 0, 0, 0x0000},
		{"red", 255, 0, 0, Red},
		{"green", 0, 255, 0, Green},
		{"blue", 0, 0, 255, Blue},
		{"yellow", 255, 255, 0, Yellow},
		{"low bits truncated", 7, 3, 7, 0x0000},
		{"mid gray", 0x80, 0x80, 0x80, 0x8410},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color565(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Color565(%d, %d, %d) = 0x%04X, want 0x%04X",
					tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColor565RGB(t *testing.T) {
	if got := Color565RGB(0xFF0000); got != Red {
		t.Errorf("Color565RGB(0xFF0000) = 0x%04X, want 0x%04X", got, Red)
	}
	if got := Color565RGB(0x00FF00); got != Green {
		t.Errorf("Color565RGB(0x00FF00) = 0x%04X, want 0x%04X", got, Green)
	}
	if got := Color565RGB(0xFFFFFF); got != White {
		t.Errorf("Color565RGB(0xFFFFFF) = 0x%04X, want 0x%04X", got, White)
	}
}

func TestColorRGBA(t *testing.T) {
	// Full 5- and 6-bit channels must expand to full 16-bit channels.
	r, g, b, a := White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("White.RGBA() = (%#x, %#x, %#x, %#x), want all 0xFFFF", r, g, b, a)
	}
	r, g, b, a = Black.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Black.RGBA() = (%#x, %#x, %#x, %#x), want (0, 0, 0, 0xFFFF)", r, g, b, a)
	}
	r, _, _, _ = Red.RGBA()
	if r != 0xFFFF {
		t.Errorf("Red.RGBA() r = %#x, want 0xFFFF", r)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{R: 255, A: 255}); got != Red {
		t.Errorf("FromColor(red) = 0x%04X, want 0x%04X", got, Red)
	}
	// Color values pass through unchanged.
	if got := FromColor(Cyan); got != Cyan {
		t.Errorf("FromColor(Cyan) = 0x%04X, want 0x%04X", got, Cyan)
	}
	if got := RGB565Model.Convert(color.RGBA{G: 255, A: 255}); got != Green {
		t.Errorf("RGB565Model.Convert(green) = %v, want 0x%04X", got, Green)
	}
}

func TestColorRoundTrip(t *testing.T) {
	// Converting an RGB565 value through color.Color and back must be
	// lossless for every channel extreme.
	for _, c := range []Color{Black, White, Red, Green, Blue, Yellow, Cyan, Magenta} {
		if got := FromColor(c); got != c {
			t.Errorf("round trip of 0x%04X = 0x%04X", c, got)
		}
	}
}
