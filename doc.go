// Package gfx is an immediate-mode 2D rendering engine for RGB565 pixel
// surfaces, aimed at driver-level environments where the caller owns the
// framebuffer and presents frames itself.
//
// The engine draws geometric primitives, bitmaps, and bitmap fonts through a
// single span-rasterization chokepoint, manages up to three frame buffers
// (engine-owned or caller-attached) for tear-free presentation, and can
// rasterize either on the CPU (direct pixel writes) or on the GPU through a
// minimal compute pipeline (see the gpu subpackage).
//
// Basic usage:
//
//	dev := gfx.NewMemoryDevice(320, 240)
//	dc := gfx.New(dev)
//	dc.FillScreen(gfx.Black)
//	dc.DrawCircle(160, 120, 60, gfx.White)
//	dc.SetCursor(10, 10)
//	dc.WriteText("hello")
//	_ = dev.Present()
//
// Out-of-bounds coordinates are clipped silently; drawing past the surface
// edge is a normal, expected occurrence in immediate-mode graphics and never
// returns an error.
package gfx
