package gfx

import "image/color"

// Color is a 16-bit packed pixel value with the bit layout
// RRRRR GGGGGG BBBBB (5 bits red, 6 bits green, 5 bits blue).
// It is the only pixel encoding the engine consumes and produces.
type Color uint16

// Common colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = Red | Green
	Cyan    Color = Green | Blue
	Magenta Color = Red | Blue
)

// Color565 packs three 8-bit channels into an RGB565 value.
// Low bits are truncated, not rounded: red and blue keep their top 5 bits,
// green its top 6.
func Color565(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// Color565RGB packs a 24-bit 0xRRGGBB value into an RGB565 value.
func Color565RGB(rgb uint32) Color {
	return Color565(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGBA implements color.Color. Channels are expanded so that a full 5- or
// 6-bit value maps to a full 16-bit channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11&0x1F) * 0xFFFF / 0x1F
	g = uint32(c>>5&0x3F) * 0xFFFF / 0x3F
	b = uint32(c&0x1F) * 0xFFFF / 0x1F
	a = 0xFFFF
	return r, g, b, a
}

// FromColor converts any color.Color to RGB565, truncating low bits.
func FromColor(c color.Color) Color {
	if c565, ok := c.(Color); ok {
		return c565
	}
	r, g, b, _ := c.RGBA()
	return Color565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model is the color.Model for RGB565 pixel values.
var RGB565Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
