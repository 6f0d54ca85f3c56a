// Command gfxdemo renders a demonstration scene and either writes it to a
// PNG file or shows it in a desktop window.
//
// Usage:
//
//	gfxdemo -width 320 -height 240 -out demo.png -scale 2
//	gfxdemo -window
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/tinyfont/proggy"

	gfx "github.com/damp11113/circle-gfx"
)

func main() {
	width := flag.Int("width", 320, "display width in pixels")
	height := flag.Int("height", 240, "display height in pixels")
	out := flag.String("out", "demo.png", "output PNG path")
	scale := flag.Int("scale", 2, "integer upscale factor for output")
	window := flag.Bool("window", false, "show an animated window instead of writing a PNG")
	buffers := flag.Int("buffers", 2, "frame buffers for the window demo (1-3)")
	flag.Parse()

	dev := gfx.NewMemoryDevice(*width, *height)
	dc := gfx.New(dev)

	if *window {
		if err := runWindow(dc, dev, *buffers, *scale); err != nil {
			log.Fatalf("gfxdemo: %v", err)
		}
		return
	}

	drawScene(dc, 0)
	if err := dc.SwapBuffers(false); err != nil {
		log.Fatalf("gfxdemo: present: %v", err)
	}
	if err := writePNG(*out, dev, *scale); err != nil {
		log.Fatalf("gfxdemo: %v", err)
	}
	fmt.Printf("wrote %s (%dx%d, scale %d)\n", *out, *width, *height, *scale)
}

// drawScene exercises the drawing API. frame shifts the animated parts.
func drawScene(dc *gfx.Context, frame int) {
	w, h := dc.Width(), dc.Height()

	dc.FillScreen(gfx.Black)
	dc.DrawRect(0, 0, w, h, gfx.White)

	dc.FillRoundRect(10, 10, w/3, h/4, 8, gfx.Blue)
	dc.DrawRoundRect(10, 10, w/3, h/4, 8, gfx.Cyan)

	cx := w/2 + (frame%60-30)*2
	dc.FillCircle(cx, h/2, h/6, gfx.Red)
	dc.DrawCircle(cx, h/2, h/6, gfx.Yellow)

	dc.FillTriangle(w-20, h-10, w-80, h-10, w-50, h-60, gfx.Green)
	for i := 0; i < 6; i++ {
		dc.DrawLine(0, h-1, w*i/6, 0, gfx.Magenta)
	}

	dc.SetCursor(14, 16)
	dc.SetTextColor(gfx.White)
	dc.WriteText("RGB565 demo")
	dc.SetCursor(14, 28)
	dc.SetTextSize(2)
	dc.SetTextColorBG(gfx.Yellow, gfx.Blue)
	dc.WriteText("Hi!")
	dc.SetTextSize(1)
	dc.SetTextColor(gfx.White)

	dc.WriteFonter(&proggy.TinySZ8pt7b, 14, h-14, "tinyfont glyphs", gfx.Cyan)
}

// writePNG converts the RGB565 framebuffer to RGBA and writes it, upscaled
// with nearest-neighbor so pixels stay crisp.
func writePNG(path string, dev *gfx.MemoryDevice, scale int) error {
	if scale < 1 {
		scale = 1
	}
	w, h := dev.Width(), dev.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fb := dev.Framebuffer()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*dev.Pitch() + x*2
			c := gfx.Color(uint16(fb[off]) | uint16(fb[off+1])<<8)
			r, g, b, a := c.RGBA()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(r >> 8)
			img.Pix[i+1] = uint8(g >> 8)
			img.Pix[i+2] = uint8(b >> 8)
			img.Pix[i+3] = uint8(a >> 8)
		}
	}

	final := img
	if scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		final = scaled
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, final); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// game animates the scene in an ebiten window, reading frames back from
// the device framebuffer.
type game struct {
	dc    *gfx.Context
	dev   *gfx.MemoryDevice
	img   *image.RGBA
	fbImg *ebiten.Image
	frame int
}

func (g *game) Update() error {
	drawScene(g.dc, g.frame)
	g.frame++
	return g.dc.SwapBuffers(true)
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.dev.Width(), g.dev.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}
	fb := g.dev.Framebuffer()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := y*g.dev.Pitch() + x*2
			c := gfx.Color(uint16(fb[off]) | uint16(fb[off+1])<<8)
			r, gr, b, _ := c.RGBA()
			i := g.img.PixOffset(x, y)
			g.img.Pix[i+0] = uint8(r >> 8)
			g.img.Pix[i+1] = uint8(gr >> 8)
			g.img.Pix[i+2] = uint8(b >> 8)
			g.img.Pix[i+3] = 0xFF
		}
	}
	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.dev.Width(), g.dev.Height()
}

func runWindow(dc *gfx.Context, dev *gfx.MemoryDevice, buffers, scale int) error {
	if err := dc.EnableMultiBuffer(buffers); err != nil {
		return fmt.Errorf("enable multi-buffer: %w", err)
	}
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("gfxdemo")
	ebiten.SetWindowSize(dev.Width()*scale, dev.Height()*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{dc: dc, dev: dev})
}
